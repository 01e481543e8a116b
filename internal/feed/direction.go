package feed

import (
	"fmt"

	"github.com/anaramires/tally/internal/transaction"
)

// Direction is the visual marker class for a transaction row.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
	DirectionLateral  Direction = "lateral"
)

// DirectionOf maps the closed transaction type set to its marker. The
// mapping is total over the three known tags; anything else is a programmer
// error upstream and panics rather than being silently rendered wrong.
func DirectionOf(t transaction.Type) Direction {
	switch t {
	case transaction.TypeIncome:
		return DirectionInbound
	case transaction.TypeExpense:
		return DirectionOutbound
	case transaction.TypeTransfer:
		return DirectionLateral
	}

	panic(fmt.Sprintf("feed: unknown transaction type %q", t))
}

// Sign returns the display prefix for an amount: "+" for income, "-" for
// expense, nothing for transfers. The stored amount itself stays unsigned.
func Sign(t transaction.Type) string {
	switch t {
	case transaction.TypeIncome:
		return "+"
	case transaction.TypeExpense:
		return "-"
	case transaction.TypeTransfer:
		return ""
	}

	panic(fmt.Sprintf("feed: unknown transaction type %q", t))
}
