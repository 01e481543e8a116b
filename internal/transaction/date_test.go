package transaction_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaramires/tally/internal/transaction"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantDay   string
	}{
		{name: "RFC3339", input: "2026-08-24T10:30:00Z", wantValid: true, wantDay: "2026-08-24"},
		{name: "DateOnly", input: "2026-08-24", wantValid: true, wantDay: "2026-08-24"},
		{name: "EuropeanDashes", input: "24-08-2026", wantValid: true, wantDay: "2026-08-24"},
		{name: "EuropeanSlashes", input: "24/08/2026", wantValid: true, wantDay: "2026-08-24"},
		{name: "Whitespace", input: "  2026-08-24  ", wantValid: true, wantDay: "2026-08-24"},
		{name: "Garbage", input: "not-a-date", wantValid: false},
		{name: "Empty", input: "", wantValid: false},
		{name: "PartialDate", input: "2026-13-45", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := transaction.ParseDate(tt.input)

			assert.Equal(t, tt.wantValid, d.Valid)

			if tt.wantValid {
				assert.Equal(t, tt.wantDay, d.DayKey())
			} else {
				assert.Empty(t, d.DayKey())
			}
		})
	}
}

func TestDate_Before_InvalidRanksLowest(t *testing.T) {
	valid := transaction.NewDate(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	invalid := transaction.ParseDate("nonsense")

	assert.True(t, invalid.Before(valid))
	assert.False(t, valid.Before(invalid))
	assert.False(t, invalid.Before(invalid))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	type payload struct {
		Date transaction.Date `json:"date"`
	}

	var p payload

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-08-24T00:00:00Z"}`), &p))
	assert.True(t, p.Date.Valid)
	assert.Equal(t, "2026-08-24", p.Date.DayKey())

	// Malformed dates are a normal data state, never a decode error.
	require.NoError(t, json.Unmarshal([]byte(`{"date":"yesterday-ish"}`), &p))
	assert.False(t, p.Date.Valid)

	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &p))
	assert.False(t, p.Date.Valid)

	require.NoError(t, json.Unmarshal([]byte(`{"date":12345}`), &p))
	assert.False(t, p.Date.Valid)
}

func TestDate_MarshalJSON(t *testing.T) {
	d := transaction.NewDate(time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC))

	got, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-24T10:00:00Z"`, string(got))

	got, err = json.Marshal(transaction.Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}
