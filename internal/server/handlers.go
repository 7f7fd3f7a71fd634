package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/spenso-dev/spenso/internal/export"
	"github.com/spenso-dev/spenso/internal/ledger"
	"github.com/spenso-dev/spenso/internal/model"
	"github.com/spenso-dev/spenso/internal/query"
)

const dateFormat = "2006-01-02"

type expenseResponse struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note"`
}

func toResponse(expenses []model.Expense) []expenseResponse {
	out := make([]expenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		out = append(out, expenseResponse{
			Date:     exp.Date.Format(dateFormat),
			Category: exp.Category,
			Amount:   exp.Amount.InexactFloat64(),
			Note:     exp.Note,
		})
	}
	return out
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": model.Categories()})
}

// handleListExpenses returns the newest-first listing, optionally
// narrowed by ?category= and ?q= (note keyword).
func (s *Server) handleListExpenses(c *gin.Context) {
	expenses, err := s.service.Store().Load()
	if err != nil {
		s.fail(c, err)
		return
	}

	filtered := query.Filter(
		query.SortedByDateDesc(expenses),
		c.Query("category"),
		c.Query("q"),
	)
	c.JSON(http.StatusOK, gin.H{
		"expenses": toResponse(filtered),
		"count":    len(filtered),
	})
}

type createExpenseRequest struct {
	Date     string `json:"date" form:"date"`
	Category string `json:"category" form:"category" binding:"required"`
	Amount   string `json:"amount" form:"amount" binding:"required"`
	Note     string `json:"note" form:"note"`
}

// handleCreateExpense adds one expense. A validation failure returns
// 422 and leaves the store untouched.
func (s *Server) handleCreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateFormat, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("date must be %s", dateFormat)})
			return
		}
		date = parsed
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be numeric"})
		return
	}

	created, err := s.service.Add(ledger.AddParams{
		Date:     date,
		Category: model.Category(req.Category),
		Amount:   amount,
		Note:     req.Note,
	})
	var verr ledger.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Error()})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	// A successful add cancels any pending clear confirmation.
	s.touchClear()

	c.JSON(http.StatusCreated, gin.H{"expense": toResponse([]model.Expense{created})[0]})
}

// handleSummary reports totals over the full, unfiltered dataset.
func (s *Server) handleSummary(c *gin.Context) {
	expenses, err := s.service.Store().Load()
	if err != nil {
		s.fail(c, err)
		return
	}

	byCategory := query.ByCategory(expenses)
	breakdown := make([]gin.H, 0, len(byCategory))
	for _, ct := range byCategory {
		breakdown = append(breakdown, gin.H{
			"category": ct.Category,
			"amount":   ct.Amount.InexactFloat64(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       query.TotalSpent(expenses).InexactFloat64(),
		"by_category": breakdown,
	})
}

// handleExport streams a downloadable copy of the store as CSV, XLSX
// or PDF (?format=).
func (s *Server) handleExport(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var data []byte
	switch format {
	case export.FormatCSV:
		data, err = s.service.Store().Raw()
	case export.FormatXLSX:
		var expenses []model.Expense
		if expenses, err = s.service.Store().Load(); err == nil {
			data, err = export.XLSX(expenses)
		}
	case export.FormatPDF:
		var expenses []model.Expense
		if expenses, err = s.service.Store().Load(); err == nil {
			data, err = export.PDF(expenses, s.cfg.Ledger.Currency)
		}
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	filename := fmt.Sprintf("expenses_%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), data)
}

// handleClear is the two-step destructive wipe: the first request arms
// the confirmation, the second performs the deletion.
func (s *Server) handleClear(c *gin.Context) {
	state, confirmed := s.requestClear()
	if !confirmed {
		c.JSON(http.StatusAccepted, gin.H{
			"status":  state.String(),
			"message": "send the clear request again to delete all expenses",
		})
		return
	}

	if err := s.service.ClearAll(); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (s *Server) fail(c *gin.Context, err error) {
	s.logger.Error("request failed",
		"request_id", c.GetString(requestIDKey),
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
