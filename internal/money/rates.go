package money

import (
	"fmt"
	"strconv"
	"strings"
)

// RateTable maps an ISO-4217 code to its rate into the display currency:
// one unit of the source currency equals rate units of the display currency.
type RateTable map[string]float64

// ParseRates parses a comma-separated rate list such as
// "USD=0.86,GBP=1.17,CHF=1.07". An empty string yields an empty table.
func ParseRates(s string) (RateTable, error) {
	table := RateTable{}

	s = strings.TrimSpace(s)
	if s == "" {
		return table, nil
	}

	for _, pair := range strings.Split(s, ",") {
		code, rateStr, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, fmt.Errorf("invalid rate entry %q, want CODE=RATE", pair)
		}

		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 3 {
			return nil, fmt.Errorf("invalid currency code %q", code)
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", code, err)
		}

		if rate <= 0 {
			return nil, fmt.Errorf("rate for %s must be positive, got %v", code, rate)
		}

		table[code] = rate
	}

	return table, nil
}

// Converter returns a ConvertFunc into the given display currency. The
// display currency itself and any code missing from the table pass through
// at rate 1.0; keeping the table complete is the operator's contract.
func (rt RateTable) Converter(display string) ConvertFunc {
	display = strings.ToUpper(display)

	return func(amount float64, fromCurrency string) float64 {
		code := strings.ToUpper(fromCurrency)
		if code == display {
			return amount
		}

		rate, ok := rt[code]
		if !ok {
			return amount
		}

		return amount * rate
	}
}
