package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spenso-dev/spenso/internal/model"
)

func TestAppend(t *testing.T) {
	existing := []model.Expense{
		{Date: date(2024, 1, 1), Category: "Rent", Amount: dec("500")},
	}

	got, err := Append(existing, AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("12.50"),
		Note:     "  lunch  ",
	})
	require.NoError(t, err)
	require.Len(t, got, 2, "append adds exactly one record")

	assert.Equal(t, "Rent", got[0].Category, "existing order preserved")
	assert.Equal(t, "Food", got[1].Category)
	assert.Equal(t, "lunch", got[1].Note, "note is trimmed")
	assert.True(t, got[1].Amount.Equal(dec("12.50")))
}

func TestAppend_RejectsZeroAmount(t *testing.T) {
	got, err := Append(nil, AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("0"),
	})
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
	assert.Empty(t, got)
}

func TestAppend_RejectsNegativeAmount(t *testing.T) {
	existing := []model.Expense{
		{Date: date(2024, 1, 1), Category: "Rent", Amount: dec("500")},
	}

	got, err := Append(existing, AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("-3"),
	})
	require.Error(t, err)
	assert.Len(t, got, 1, "input returned unchanged")
}

func TestAppend_RejectsUnknownCategory(t *testing.T) {
	_, err := Append(nil, AddParams{
		Date:     date(2024, 1, 5),
		Category: "Vacation",
		Amount:   dec("10"),
	})
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)
}

func TestServiceAdd(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	created, err := svc.Add(AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("12.50"),
		Note:     " lunch ",
	})
	require.NoError(t, err)
	assert.Equal(t, "lunch", created.Note)

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("12.5")))
}

func TestServiceAdd_ValidationLeavesStoreUntouched(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	_, err := svc.Add(AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("12.50"),
	})
	require.NoError(t, err)

	_, err = svc.Add(AddParams{
		Date:     date(2024, 1, 6),
		Category: model.CategoryFood,
		Amount:   dec("0"),
	})
	require.Error(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1, "rejected entry must not change the store")
}

func TestServiceAdd_DuplicatesPermitted(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	params := AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("12.50"),
		Note:     "lunch",
	}
	_, err := svc.Add(params)
	require.NoError(t, err)
	_, err = svc.Add(params)
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestServiceClearAll(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	_, err := svc.Add(AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("12.50"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.ClearAll())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

type recordingCommitter struct {
	messages []string
}

func (c *recordingCommitter) CommitLedger(message string) error {
	c.messages = append(c.messages, message)
	return nil
}

func TestServiceCommitsMutations(t *testing.T) {
	store := newTestStore(t)
	committer := &recordingCommitter{}
	svc := NewService(store, committer)

	_, err := svc.Add(AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("12.50"),
	})
	require.NoError(t, err)
	require.NoError(t, svc.ClearAll())

	require.Len(t, committer.messages, 2)
	assert.Contains(t, committer.messages[0], "add:")
	assert.Contains(t, committer.messages[1], "clear:")
}

func TestServiceAdd_NoCommitOnValidationFailure(t *testing.T) {
	store := newTestStore(t)
	committer := &recordingCommitter{}
	svc := NewService(store, committer)

	_, err := svc.Add(AddParams{
		Date:     date(2024, 1, 5),
		Category: model.CategoryFood,
		Amount:   dec("0"),
	})
	require.Error(t, err)
	assert.Empty(t, committer.messages)
}
