package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts as localized currency strings with exactly two
// fraction digits. An unrecognized currency code is a loud error: in a
// finance view a visible failure beats a silently wrong amount.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a Formatter for the given locale.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format renders amount (in currency units) with the symbol of the given
// ISO-4217 code. The code is validated against the currency database.
func (f *Formatter) Format(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("unrecognized currency code %q: %w", code, err)
	}

	return f.printer.Sprintf("%v%.2f", currency.Symbol(unit), amount), nil
}
