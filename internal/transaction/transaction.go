package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction. The set is closed:
// income and expense affect the user's net position, transfer is movement
// between the user's own accounts.
type Type string

const (
	TypeIncome   Type = "income"
	TypeExpense  Type = "expense"
	TypeTransfer Type = "transfer"
)

// Valid reports whether t is one of the three known tags.
func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}

	return false
}

// Transaction represents a financial transaction. Amount is an unsigned
// magnitude in cents; direction is carried by Type, never by the sign.
type Transaction struct {
	ID          uuid.UUID
	Amount      int64 // Amount in cents, always >= 0
	Currency    string
	Type        Type
	Description string
	CategoryID  *uuid.UUID
	SplitType   *string // Presence marks a shared transaction; the value is not interpreted here.
	Date        Date
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// Shared reports whether the transaction is split between parties.
func (t *Transaction) Shared() bool {
	return t.SplitType != nil
}
