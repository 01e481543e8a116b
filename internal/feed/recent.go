// Package feed selects and orders transactions for the recent-activity
// widget. Everything here is a pure function over its inputs.
package feed

import (
	"sort"

	"github.com/anaramires/tally/internal/transaction"
)

// DefaultLimit is how many entries the widget shows when the caller does
// not ask for a specific count.
const DefaultLimit = 5

// Recent returns the most recent transactions, newest first, at most limit
// entries. The input slice is never mutated. The sort is stable, so
// transactions sharing a timestamp keep their input order, and entries with
// an absent or unparsable date rank below every dated one instead of
// breaking the sort. A limit of zero or less yields an empty result.
func Recent(txs []*transaction.Transaction, limit int) []*transaction.Transaction {
	if limit <= 0 || len(txs) == 0 {
		return nil
	}

	sorted := make([]*transaction.Transaction, len(txs))
	copy(sorted, txs)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}
