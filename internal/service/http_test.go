package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billease/internal/ledger"
	"github.com/mmynk/billease/internal/models"
	"github.com/mmynk/billease/internal/storage/memory"
)

func newTestRouter(t *testing.T) (*chi.Mux, *ledger.Ledger) {
	t.Helper()

	l, err := ledger.New(context.Background(), memory.New(),
		ledger.WithClock(func() time.Time { return time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/api", NewHTTPHandler(l).Routes())
	r.Get("/healthz", Health)
	return r, l
}

func TestExport(t *testing.T) {
	r, l := newTestRouter(t)
	ctx := context.Background()

	p, err := l.AddParticipant(ctx, "Alice")
	require.NoError(t, err)
	_, err = l.AddGroup(ctx, ledger.GroupInput{Name: "Summer Trip", Members: []string{p.ID}})
	require.NoError(t, err)
	_, err = l.AddExpense(ctx, ledger.ExpenseInput{
		Description: "Ferry", Amount: 42.5, PaidBy: p.ID, Category: models.CategoryTransport,
		Date: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), Splits: []models.Split{{ParticipantID: p.ID}},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Summer-Trip-expenses-2025-07-04.csv"`, rec.Header().Get("Content-Disposition"))

	lines := strings.Split(rec.Body.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"2025-07-01","Ferry","Transport","$42.50","Alice","equal",""`, lines[1])
}

func TestCategories(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Icon  string `json:"icon"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, len(models.Categories))
	assert.Equal(t, "food", body[0].ID)
	assert.Equal(t, "Food & Dining", body[0].Label)
	assert.Equal(t, "more-horizontal", body[len(body)-1].Icon)
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
