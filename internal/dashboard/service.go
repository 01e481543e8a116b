// Package dashboard assembles the data behind the two dashboard widgets:
// the recent-activity list and the weekly spending chart. It fetches
// snapshots from the stores and hands them to the pure selectors.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/anaramires/tally/internal/category"
	"github.com/anaramires/tally/internal/feed"
	"github.com/anaramires/tally/internal/money"
	"github.com/anaramires/tally/internal/transaction"
	"github.com/anaramires/tally/internal/weekly"
)

type TransactionSource interface {
	ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

type CategorySource interface {
	ListCategories(ctx context.Context) ([]category.Category, error)
}

type Service struct {
	txs       TransactionSource
	cats      CategorySource
	convert   money.ConvertFunc
	formatter *money.Formatter
}

func NewService(txs TransactionSource, cats CategorySource, convert money.ConvertFunc, formatter *money.Formatter) *Service {
	return &Service{
		txs:       txs,
		cats:      cats,
		convert:   convert,
		formatter: formatter,
	}
}

// Entry is one row of the recent-activity widget, ready for display.
type Entry struct {
	Transaction  *transaction.Transaction
	CategoryName string // blank when the category is unknown
	Direction    feed.Direction
	Sign         string
	Amount       string // formatted in the transaction's own currency
	Shared       bool
}

// RecentActivity returns the limit most recent transactions with their
// display attributes resolved. A limit of zero or less falls back to the
// widget default. A category id with no matching category yields a blank
// label; an unknown currency code surfaces as an error.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = feed.DefaultLimit
	}

	txs, err := s.txs.ListTransactions(ctx, transaction.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	cats, err := s.cats.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	recent := feed.Recent(txs, limit)

	entries := make([]Entry, 0, len(recent))

	for _, tx := range recent {
		amount, err := s.formatter.Format(money.Units(tx.Amount), tx.Currency)
		if err != nil {
			return nil, fmt.Errorf("formatting amount for %s: %w", tx.ID, err)
		}

		entry := Entry{
			Transaction: tx,
			Direction:   feed.DirectionOf(tx.Type),
			Sign:        feed.Sign(tx.Type),
			Amount:      amount,
			Shared:      tx.Shared(),
		}

		if c, ok := category.Resolve(cats, tx.CategoryID); ok {
			entry.CategoryName = c.Name
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// WeeklySpending returns the seven daily buckets of the week containing
// ref, totals expressed in the configured display currency. Only the week's
// date range is fetched from the store; bucketing itself stays in-memory.
func (s *Service) WeeklySpending(ctx context.Context, ref time.Time) ([]weekly.DayBucket, error) {
	start := weekly.WeekStart(ref)
	end := start.AddDate(0, 0, weekly.DaysPerWeek).Add(-time.Second)

	startDate := transaction.NewDate(start)
	endDate := transaction.NewDate(end)

	txs, err := s.txs.ListTransactions(ctx, transaction.ListFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	buckets, err := weekly.Aggregate(txs, ref, s.convert)
	if err != nil {
		return nil, err
	}

	return buckets, nil
}
