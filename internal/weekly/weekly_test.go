package weekly_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaramires/tally/internal/money"
	"github.com/anaramires/tally/internal/transaction"
	"github.com/anaramires/tally/internal/weekly"
)

// The week of 2026-08-24 (a Monday) through 2026-08-30 (a Sunday).
var monday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func entry(day time.Time, typ transaction.Type, cents int64, currency string) *transaction.Transaction {
	return &transaction.Transaction{
		Amount:   cents,
		Currency: currency,
		Type:     typ,
		Date:     transaction.NewDate(day),
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
	}{
		{name: "Monday", ref: monday},
		{name: "Wednesday", ref: monday.AddDate(0, 0, 2)},
		{name: "Sunday", ref: monday.AddDate(0, 0, 6)},
		{name: "MondayEvening", ref: monday.Add(23 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, weekly.WeekStart(tt.ref))
		})
	}
}

func TestWeekStart_CrossesMonthBoundary(t *testing.T) {
	// 2026-09-01 is a Tuesday; its week starts Monday 2026-08-31.
	ref := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), weekly.WeekStart(ref))
}

func TestAggregate_SevenBucketsMondayFirst(t *testing.T) {
	wantLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	// Whatever day of the week the reference falls on, the buckets are the
	// same seven days, Monday first.
	for offset := 0; offset < 7; offset++ {
		ref := monday.AddDate(0, 0, offset)

		buckets, err := weekly.Aggregate(nil, ref, money.Identity)
		require.NoError(t, err)
		require.Len(t, buckets, 7)

		for i, b := range buckets {
			assert.Equal(t, wantLabels[i], b.Label)
			assert.Equal(t, monday.AddDate(0, 0, i), b.Date)
			assert.NotEmpty(t, b.DateLabel)
			assert.Zero(t, b.Income)
			assert.Zero(t, b.Expense)
		}
	}
}

func TestAggregate_MondayScenario(t *testing.T) {
	txs := []*transaction.Transaction{
		entry(monday, transaction.TypeIncome, 10000, "USD"),
		entry(monday, transaction.TypeExpense, 4000, "USD"),
	}

	buckets, err := weekly.Aggregate(txs, monday, money.Identity)
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	assert.Equal(t, 100.0, buckets[0].Income)
	assert.Equal(t, 40.0, buckets[0].Expense)

	for _, b := range buckets[1:] {
		assert.Zero(t, b.Income)
		assert.Zero(t, b.Expense)
	}
}

func TestAggregate_SumsPerDay(t *testing.T) {
	wednesday := monday.AddDate(0, 0, 2)
	txs := []*transaction.Transaction{
		entry(wednesday, transaction.TypeExpense, 1000, "EUR"),
		entry(wednesday, transaction.TypeExpense, 250, "EUR"),
		entry(wednesday, transaction.TypeIncome, 5000, "EUR"),
	}

	buckets, err := weekly.Aggregate(txs, monday, money.Identity)
	require.NoError(t, err)

	assert.Equal(t, 12.50, buckets[2].Expense)
	assert.Equal(t, 50.0, buckets[2].Income)
}

func TestAggregate_TransfersExcluded(t *testing.T) {
	txs := []*transaction.Transaction{
		entry(monday, transaction.TypeTransfer, 99999, "EUR"),
	}

	buckets, err := weekly.Aggregate(txs, monday, money.Identity)
	require.NoError(t, err)

	for _, b := range buckets {
		assert.Zero(t, b.Income)
		assert.Zero(t, b.Expense)
	}
}

func TestAggregate_OutsideWeekAndMalformedExcluded(t *testing.T) {
	txs := []*transaction.Transaction{
		entry(monday.AddDate(0, 0, -1), transaction.TypeExpense, 1000, "EUR"), // previous Sunday
		entry(monday.AddDate(0, 0, 7), transaction.TypeExpense, 1000, "EUR"),  // next Monday
		{Amount: 1000, Currency: "EUR", Type: transaction.TypeExpense, Date: transaction.ParseDate("garbage")},
		nil,
	}

	buckets, err := weekly.Aggregate(txs, monday, money.Identity)
	require.NoError(t, err)

	for _, b := range buckets {
		assert.Zero(t, b.Income)
		assert.Zero(t, b.Expense)
	}
}

func TestAggregate_UsesConverter(t *testing.T) {
	txs := []*transaction.Transaction{
		entry(monday, transaction.TypeExpense, 10000, "USD"),
		entry(monday, transaction.TypeExpense, 10000, "EUR"),
	}

	halveUSD := func(amount float64, from string) float64 {
		if from == "USD" {
			return amount / 2
		}
		return amount
	}

	buckets, err := weekly.Aggregate(txs, monday, halveUSD)
	require.NoError(t, err)

	assert.Equal(t, 150.0, buckets[0].Expense)
}

func TestAggregate_NegativeConversionTolerated(t *testing.T) {
	// A converter may legitimately return zero or negative (refund flows);
	// the aggregator just sums whatever it gets.
	txs := []*transaction.Transaction{
		entry(monday, transaction.TypeExpense, 1000, "EUR"),
	}

	negate := func(amount float64, _ string) float64 { return -amount }

	buckets, err := weekly.Aggregate(txs, monday, negate)
	require.NoError(t, err)
	assert.Equal(t, -10.0, buckets[0].Expense)
}

func TestAggregate_NilConverter(t *testing.T) {
	_, err := weekly.Aggregate(nil, monday, nil)
	assert.ErrorIs(t, err, weekly.ErrNilConverter)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	txs := []*transaction.Transaction{
		entry(monday, transaction.TypeIncome, 1000, "EUR"),
	}

	first, err := weekly.Aggregate(txs, monday, money.Identity)
	require.NoError(t, err)

	second, err := weekly.Aggregate(txs, monday, money.Identity)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1000), txs[0].Amount)
}
