package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/anaramires/tally/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Amount      int64            `json:"amount"`
	Currency    string           `json:"currency"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	SplitType   *string          `json:"split_type,omitempty"`
	Date        transaction.Date `json:"date"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		Type:        tx.Type,
		Description: tx.Description,
		CategoryID:  tx.CategoryID,
		SplitType:   tx.SplitType,
		Date:        tx.Date,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
