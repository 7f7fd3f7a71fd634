package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spenso-dev/spenso/internal/config"
	"github.com/spenso-dev/spenso/internal/ledger"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine, *ledger.Store) {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode

	store := ledger.NewStore(filepath.Join(t.TempDir(), "data", "expenses.csv"))
	svc := ledger.NewService(store, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := New(cfg, svc, logger)
	return srv, srv.Router(), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	_, router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateAndList(t *testing.T) {
	_, router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/expenses",
		`{"date":"2024-01-05","category":"Food","amount":"12.50","note":" lunch "}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)["expense"].(map[string]any)
	assert.Equal(t, "lunch", created["note"], "note is trimmed")
	assert.InDelta(t, 12.5, created["amount"], 1e-9)

	w = doJSON(t, router, http.MethodGet, "/api/expenses", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"])
}

func TestCreate_ValidationError(t *testing.T) {
	_, router, store := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/expenses",
		`{"date":"2024-01-05","category":"Food","amount":"0"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode(t, w)["error"], "amount")

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got, "rejected entry must not change the store")
}

func TestCreate_UnknownCategory(t *testing.T) {
	_, router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/expenses",
		`{"date":"2024-01-05","category":"Vacation","amount":"10"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreate_BadDate(t *testing.T) {
	_, router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/expenses",
		`{"date":"05/01/2024","category":"Food","amount":"10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_Filters(t *testing.T) {
	_, router, _ := newTestServer(t)

	for _, body := range []string{
		`{"date":"2024-01-05","category":"Food","amount":"12.50","note":"lunch"}`,
		`{"date":"2024-01-06","category":"Rent","amount":"500"}`,
	} {
		w := doJSON(t, router, http.MethodPost, "/api/expenses", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/expenses?category=Food", "")
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = doJSON(t, router, http.MethodGet, "/api/expenses?q=LUN", "")
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = doJSON(t, router, http.MethodGet, "/api/expenses?q=xyz", "")
	assert.EqualValues(t, 0, decode(t, w)["count"])

	// Newest first in the unfiltered listing.
	w = doJSON(t, router, http.MethodGet, "/api/expenses", "")
	expenses := decode(t, w)["expenses"].([]any)
	first := expenses[0].(map[string]any)
	assert.Equal(t, "2024-01-06", first["date"])
}

func TestSummary(t *testing.T) {
	_, router, _ := newTestServer(t)

	for _, body := range []string{
		`{"date":"2024-01-05","category":"Food","amount":"12.50"}`,
		`{"date":"2024-01-06","category":"Rent","amount":"500"}`,
	} {
		w := doJSON(t, router, http.MethodPost, "/api/expenses", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/summary", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.InDelta(t, 512.5, body["total"], 1e-9)

	byCategory := body["by_category"].([]any)
	require.Len(t, byCategory, 2)
	top := byCategory[0].(map[string]any)
	assert.Equal(t, "Rent", top["category"], "ordered by descending total")
}

func TestExportCSV(t *testing.T) {
	_, router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/expenses",
		`{"date":"2024-01-05","category":"Food","amount":"12.5","note":"lunch"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/export?format=csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "2024-01-05,Food,12.5,lunch")
}

func TestExport_UnknownFormat(t *testing.T) {
	_, router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/export?format=doc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClear_TwoStep(t *testing.T) {
	_, router, store := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/expenses",
		`{"date":"2024-01-05","category":"Food","amount":"12.5"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// First request arms the confirmation, nothing deleted.
	w = doJSON(t, router, http.MethodPost, "/api/clear", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Second request performs the deletion.
	w = doJSON(t, router, http.MethodPost, "/api/clear", "")
	assert.Equal(t, http.StatusOK, w.Code)
	got, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClear_AddResetsPending(t *testing.T) {
	_, router, store := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/clear", "")
	require.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/expenses",
		`{"date":"2024-01-05","category":"Food","amount":"12.5"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// The add reset the machine, so this is a fresh first request.
	w = doJSON(t, router, http.MethodPost, "/api/clear", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1, "nothing deleted after the reset")
}

func TestRequestIDHeader(t *testing.T) {
	_, router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/api/health", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
