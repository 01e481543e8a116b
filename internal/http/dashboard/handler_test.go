package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/anaramires/tally/internal/category"
	"github.com/anaramires/tally/internal/dashboard"
	dashboardHandler "github.com/anaramires/tally/internal/http/dashboard"
	"github.com/anaramires/tally/internal/money"
	"github.com/anaramires/tally/internal/transaction"
)

type stubTxSource struct {
	txs []*transaction.Transaction
}

func (s *stubTxSource) ListTransactions(_ context.Context, _ transaction.ListFilter) ([]*transaction.Transaction, error) {
	return s.txs, nil
}

type stubCatSource struct{}

func (stubCatSource) ListCategories(_ context.Context) ([]category.Category, error) {
	return nil, nil
}

func newRouter(txs []*transaction.Transaction) http.Handler {
	svc := dashboard.NewService(&stubTxSource{txs: txs}, stubCatSource{}, money.Identity, money.NewFormatter(language.AmericanEnglish))
	h := dashboardHandler.NewHandler(svc)

	r := chi.NewRouter()
	r.Route("/dashboard", h.Routes)

	return r
}

func TestHandler_Recent(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		{ID: uuid.New(), Amount: 1000, Currency: "USD", Type: transaction.TypeExpense, Description: "Coffee", Date: transaction.NewDate(monday)},
		{ID: uuid.New(), Amount: 2000, Currency: "USD", Type: transaction.TypeIncome, Description: "Refund", Date: transaction.NewDate(monday.AddDate(0, 0, 1))},
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/recent?limit=1", nil)
	rec := httptest.NewRecorder()
	newRouter(txs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Entries []struct {
			Description string `json:"description"`
			Sign        string `json:"sign"`
			Direction   string `json:"direction"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "Refund", resp.Entries[0].Description)
	assert.Equal(t, "+", resp.Entries[0].Sign)
	assert.Equal(t, "inbound", resp.Entries[0].Direction)
}

func TestHandler_Recent_InvalidLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard/recent?limit=abc", nil)
	rec := httptest.NewRecorder()
	newRouter(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Week(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	txs := []*transaction.Transaction{
		{ID: uuid.New(), Amount: 10000, Currency: "USD", Type: transaction.TypeIncome, Date: transaction.NewDate(monday)},
		{ID: uuid.New(), Amount: 4000, Currency: "USD", Type: transaction.TypeExpense, Date: transaction.NewDate(monday)},
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard/week?date=2026-08-26", nil)
	rec := httptest.NewRecorder()
	newRouter(txs).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Days []struct {
			Label   string  `json:"label"`
			Income  float64 `json:"income"`
			Expense float64 `json:"expense"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "Mon", resp.Days[0].Label)
	assert.Equal(t, 100.0, resp.Days[0].Income)
	assert.Equal(t, 40.0, resp.Days[0].Expense)
	assert.Equal(t, "Sun", resp.Days[6].Label)
}

func TestHandler_Week_InvalidDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard/week?date=yesterday", nil)
	rec := httptest.NewRecorder()
	newRouter(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
