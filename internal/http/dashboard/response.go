package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/anaramires/tally/internal/dashboard"
	"github.com/anaramires/tally/internal/feed"
	"github.com/anaramires/tally/internal/transaction"
	"github.com/anaramires/tally/internal/weekly"
)

type entryResponse struct {
	ID          uuid.UUID        `json:"id"`
	Description string           `json:"description"`
	Category    string           `json:"category,omitempty"`
	Direction   feed.Direction   `json:"direction"`
	Sign        string           `json:"sign"`
	Amount      string           `json:"amount"`
	Currency    string           `json:"currency"`
	Shared      bool             `json:"shared"`
	Date        transaction.Date `json:"date"`
}

type recentResponse struct {
	Entries []entryResponse `json:"entries"`
}

func toRecentResponse(entries []dashboard.Entry) recentResponse {
	resp := recentResponse{Entries: make([]entryResponse, 0, len(entries))}

	for _, e := range entries {
		resp.Entries = append(resp.Entries, entryResponse{
			ID:          e.Transaction.ID,
			Description: e.Transaction.Description,
			Category:    e.CategoryName,
			Direction:   e.Direction,
			Sign:        e.Sign,
			Amount:      e.Amount,
			Currency:    e.Transaction.Currency,
			Shared:      e.Shared,
			Date:        e.Transaction.Date,
		})
	}

	return resp
}

type bucketResponse struct {
	Date      time.Time `json:"date"`
	Label     string    `json:"label"`
	DateLabel string    `json:"date_label"`
	Income    float64   `json:"income"`
	Expense   float64   `json:"expense"`
}

type weekResponse struct {
	Days []bucketResponse `json:"days"`
}

func toWeekResponse(buckets []weekly.DayBucket) weekResponse {
	resp := weekResponse{Days: make([]bucketResponse, 0, len(buckets))}

	for _, b := range buckets {
		resp.Days = append(resp.Days, bucketResponse{
			Date:      b.Date,
			Label:     b.Label,
			DateLabel: b.DateLabel,
			Income:    b.Income,
			Expense:   b.Expense,
		})
	}

	return resp
}
