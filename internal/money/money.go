// Package money holds the currency concerns shared by the dashboard:
// cents arithmetic, the injected conversion contract and display formatting.
package money

// ConvertFunc converts an amount in currency units from the given ISO-4217
// code into the caller's display currency. It is injected wherever sums
// cross currencies so the aggregation logic stays pure and testable.
// Behavior for codes the service does not know is the service's contract.
type ConvertFunc func(amount float64, fromCurrency string) float64

// Identity returns the amount unchanged. Useful for tests and for
// single-currency setups.
func Identity(amount float64, _ string) float64 {
	return amount
}

// Units converts an amount stored as cents into currency units.
func Units(cents int64) float64 {
	return float64(cents) / 100.0
}
