package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spenso-dev/spenso/internal/model"
)

// ValidationError describes a rejected entry. It is reported to the
// user and leaves the store untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Committer records a ledger mutation in version control. Optional.
type Committer interface {
	CommitLedger(message string) error
}

// AddParams holds parameters for creating one expense.
type AddParams struct {
	Date     time.Time
	Category model.Category
	Amount   decimal.Decimal
	Note     string
}

// Append validates params and returns expenses with one new record
// appended at the end. Existing order is preserved. On validation
// failure the input is returned unchanged alongside a ValidationError.
func Append(expenses []model.Expense, params AddParams) ([]model.Expense, error) {
	if !model.ValidCategory(string(params.Category)) {
		return expenses, ValidationError{
			Field:  "category",
			Reason: fmt.Sprintf("%q is not one of the known categories", params.Category),
		}
	}
	if !params.Amount.IsPositive() {
		return expenses, ValidationError{
			Field:  "amount",
			Reason: "must be greater than 0",
		}
	}

	exp := model.Expense{
		Date:     params.Date,
		Category: string(params.Category),
		Amount:   params.Amount,
		Note:     strings.TrimSpace(params.Note),
	}
	return append(expenses, exp), nil
}

// Service runs one interaction cycle per call: the store is reloaded
// fresh each time and never cached across calls.
type Service struct {
	store     *Store
	committer Committer
}

// NewService creates a ledger Service. committer may be nil.
func NewService(store *Store, committer Committer) *Service {
	return &Service{store: store, committer: committer}
}

// Store returns the underlying record store.
func (s *Service) Store() *Store {
	return s.store
}

// Add loads the store, appends one validated expense, and saves the
// full set back. Returns the created record.
func (s *Service) Add(params AddParams) (model.Expense, error) {
	expenses, err := s.store.Load()
	if err != nil {
		return model.Expense{}, err
	}

	updated, err := Append(expenses, params)
	if err != nil {
		return model.Expense{}, err
	}

	if err := s.store.Save(updated); err != nil {
		return model.Expense{}, err
	}

	s.commit(fmt.Sprintf("add: %s %s %s", params.Date.Format(dateFormat), params.Category, params.Amount))
	return updated[len(updated)-1], nil
}

// ClearAll deletes the entire store. Confirmation is the caller's
// responsibility, via the session clear-confirm state machine.
func (s *Service) ClearAll() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.commit("clear: remove all expenses")
	return nil
}

func (s *Service) commit(message string) {
	if s.committer == nil {
		return
	}
	// Commit failures do not undo a completed ledger mutation.
	_ = s.committer.CommitLedger(message)
}
