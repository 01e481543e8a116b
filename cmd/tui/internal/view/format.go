package view

import (
	"context"
	"fmt"
	"time"

	"github.com/anaramires/tally/internal/transaction"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats an amount stored as cents into a human-readable string.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

// FormatDate renders a transaction date as YYYY-MM-DD, or a placeholder for
// dates that never parsed.
func FormatDate(d transaction.Date) string {
	if !d.Valid {
		return "----------"
	}

	return d.Time.Format("2006-01-02")
}

// RelTime renders a rough "time ago" label for list rows.
func RelTime(d transaction.Date) string {
	if !d.Valid {
		return ""
	}

	days := int(time.Since(d.Time).Hours() / 24)

	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	case days < 30:
		return fmt.Sprintf("%dw ago", days/7)
	default:
		return fmt.Sprintf("%dmo ago", days/30)
	}
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
