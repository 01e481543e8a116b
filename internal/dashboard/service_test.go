package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/anaramires/tally/internal/category"
	"github.com/anaramires/tally/internal/dashboard"
	"github.com/anaramires/tally/internal/feed"
	"github.com/anaramires/tally/internal/money"
	"github.com/anaramires/tally/internal/transaction"
)

type stubTxSource struct {
	txs []*transaction.Transaction
	err error

	gotFilter transaction.ListFilter
}

func (s *stubTxSource) ListTransactions(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	s.gotFilter = filter
	return s.txs, s.err
}

type stubCatSource struct {
	cats []category.Category
	err  error
}

func (s *stubCatSource) ListCategories(_ context.Context) ([]category.Category, error) {
	return s.cats, s.err
}

func newService(txs *stubTxSource, cats *stubCatSource) *dashboard.Service {
	return dashboard.NewService(txs, cats, money.Identity, money.NewFormatter(language.AmericanEnglish))
}

func TestService_RecentActivity(t *testing.T) {
	groceries := category.Category{ID: uuid.New(), Name: "Groceries"}
	missingCat := uuid.New()
	splitEven := "even"

	day := func(d int) transaction.Date {
		return transaction.NewDate(time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC))
	}

	txSrc := &stubTxSource{txs: []*transaction.Transaction{
		{ID: uuid.New(), Amount: 1250, Currency: "USD", Type: transaction.TypeExpense, Description: "Market", CategoryID: &groceries.ID, Date: day(20)},
		{ID: uuid.New(), Amount: 300000, Currency: "USD", Type: transaction.TypeIncome, Description: "Salary", CategoryID: &missingCat, Date: day(25)},
		{ID: uuid.New(), Amount: 5000, Currency: "USD", Type: transaction.TypeTransfer, Description: "To savings", SplitType: &splitEven, Date: day(22)},
	}}
	catSrc := &stubCatSource{cats: []category.Category{groceries}}

	entries, err := newService(txSrc, catSrc).RecentActivity(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "Salary", entries[0].Transaction.Description)
	assert.Equal(t, feed.DirectionInbound, entries[0].Direction)
	assert.Equal(t, "+", entries[0].Sign)
	assert.Contains(t, entries[0].Amount, "3,000.00")
	// Unknown category degrades to a blank label, not an error.
	assert.Empty(t, entries[0].CategoryName)

	assert.Equal(t, "To savings", entries[1].Transaction.Description)
	assert.Equal(t, feed.DirectionLateral, entries[1].Direction)
	assert.Equal(t, "", entries[1].Sign)
	assert.True(t, entries[1].Shared)

	assert.Equal(t, "Market", entries[2].Transaction.Description)
	assert.Equal(t, "Groceries", entries[2].CategoryName)
	assert.Equal(t, "-", entries[2].Sign)
	assert.False(t, entries[2].Shared)
}

func TestService_RecentActivity_DefaultLimit(t *testing.T) {
	var txs []*transaction.Transaction
	for i := 1; i <= 9; i++ {
		txs = append(txs, &transaction.Transaction{
			ID:       uuid.New(),
			Amount:   100,
			Currency: "EUR",
			Type:     transaction.TypeExpense,
			Date:     transaction.NewDate(time.Date(2026, 8, i, 0, 0, 0, 0, time.UTC)),
		})
	}

	entries, err := newService(&stubTxSource{txs: txs}, &stubCatSource{}).RecentActivity(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, feed.DefaultLimit)
}

func TestService_RecentActivity_UnknownCurrencyFailsLoudly(t *testing.T) {
	txSrc := &stubTxSource{txs: []*transaction.Transaction{
		{ID: uuid.New(), Amount: 100, Currency: "WAT", Type: transaction.TypeExpense, Date: transaction.NewDate(time.Now())},
	}}

	_, err := newService(txSrc, &stubCatSource{}).RecentActivity(context.Background(), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WAT")
}

func TestService_RecentActivity_SourceError(t *testing.T) {
	_, err := newService(&stubTxSource{err: errors.New("db down")}, &stubCatSource{}).RecentActivity(context.Background(), 5)
	assert.Error(t, err)

	_, err = newService(&stubTxSource{}, &stubCatSource{err: errors.New("db down")}).RecentActivity(context.Background(), 5)
	assert.Error(t, err)
}

func TestService_WeeklySpending(t *testing.T) {
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	txSrc := &stubTxSource{txs: []*transaction.Transaction{
		{Amount: 10000, Currency: "USD", Type: transaction.TypeIncome, Date: transaction.NewDate(monday)},
		{Amount: 4000, Currency: "USD", Type: transaction.TypeExpense, Date: transaction.NewDate(monday)},
	}}

	buckets, err := newService(txSrc, &stubCatSource{}).WeeklySpending(context.Background(), monday.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	assert.Equal(t, 100.0, buckets[0].Income)
	assert.Equal(t, 40.0, buckets[0].Expense)

	// The store fetch is scoped to the week's date range.
	require.NotNil(t, txSrc.gotFilter.StartDate)
	require.NotNil(t, txSrc.gotFilter.EndDate)
	assert.Equal(t, "2026-08-24", txSrc.gotFilter.StartDate.DayKey())
	assert.Equal(t, "2026-08-30", txSrc.gotFilter.EndDate.DayKey())
}

func TestService_WeeklySpending_NilConverter(t *testing.T) {
	svc := dashboard.NewService(&stubTxSource{}, &stubCatSource{}, nil, money.NewFormatter(language.AmericanEnglish))

	_, err := svc.WeeklySpending(context.Background(), time.Now())
	assert.Error(t, err)
}
