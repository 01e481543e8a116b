// Package weekly buckets transactions into the seven days of an ISO week
// (Monday through Sunday) and sums income and expense per day in a single
// display currency. It performs no currency math of its own: conversion is
// injected by the caller.
package weekly

import (
	"errors"
	"time"

	"github.com/anaramires/tally/internal/money"
	"github.com/anaramires/tally/internal/transaction"
)

const DaysPerWeek = 7

// ErrNilConverter is returned when no conversion function is supplied.
// Summing mixed currencies without one would silently corrupt the totals.
var ErrNilConverter = errors.New("weekly: conversion function is required")

// DayBucket is one calendar day's aggregated totals, expressed in the
// caller's display currency.
type DayBucket struct {
	Date      time.Time
	Label     string // short day name, e.g. "Mon"
	DateLabel string // full calendar date for tooltips, e.g. "Aug 24, 2026"
	Income    float64
	Expense   float64
}

// WeekStart returns Monday 00:00 of the week containing ref, in ref's
// location. ISO weeks start on Monday; time.Weekday puts Sunday at 0.
func WeekStart(ref time.Time) time.Time {
	offset := int(ref.Weekday())
	if offset == 0 {
		offset = 7
	}

	day := ref.AddDate(0, 0, -offset+1)

	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, ref.Location())
}

// Aggregate buckets txs into the week containing ref and sums converted
// income and expense per day. It always returns exactly seven buckets,
// Monday first, whatever day ref falls on.
//
// A transaction lands in the bucket whose calendar day matches its date;
// entries with an absent or unparsable date belong to no bucket. Transfers
// are movement between the user's own accounts and count toward neither
// total. The input is never mutated and repeated calls with the same inputs
// produce identical output.
func Aggregate(txs []*transaction.Transaction, ref time.Time, convert money.ConvertFunc) ([]DayBucket, error) {
	if convert == nil {
		return nil, ErrNilConverter
	}

	start := WeekStart(ref)

	buckets := make([]DayBucket, DaysPerWeek)
	index := make(map[string]int, DaysPerWeek)

	for i := range buckets {
		day := start.AddDate(0, 0, i)
		buckets[i] = DayBucket{
			Date:      day,
			Label:     day.Format("Mon"),
			DateLabel: day.Format("Jan 2, 2006"),
		}
		index[day.Format(time.DateOnly)] = i
	}

	for _, t := range txs {
		if t == nil || !t.Date.Valid {
			continue
		}

		i, ok := index[t.Date.DayKey()]
		if !ok {
			continue
		}

		switch t.Type {
		case transaction.TypeIncome:
			buckets[i].Income += convert(money.Units(t.Amount), t.Currency)
		case transaction.TypeExpense:
			buckets[i].Expense += convert(money.Units(t.Amount), t.Currency)
		case transaction.TypeTransfer:
			// Internal movement, neither income nor spending.
		}
	}

	return buckets, nil
}
