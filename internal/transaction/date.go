package transaction

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date is a transaction timestamp that may have failed to parse upstream.
// Backends occasionally hand over textually malformed dates; those become a
// Date with Valid=false instead of an error, so sorting and bucketing never
// have to deal with a thrown-away row mid-computation. An invalid Date ranks
// below every real date.
type Date struct {
	Time  time.Time
	Valid bool
}

// dateLayouts are tried in order when parsing. RFC3339 is what the API
// emits; the rest cover statement exports and hand-entered values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"02-01-2006",
	"02/01/2006",
}

// NewDate returns a valid Date at day granularity in t's location.
func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

// ParseDate parses s defensively. It never returns an error: anything that
// matches no known layout comes back as an invalid Date.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t, Valid: true}
		}
	}

	return Date{}
}

// Before reports whether d ranks before other. An invalid Date ranks as the
// epoch, so malformed entries sort below every parseable one.
func (d Date) Before(other Date) bool {
	return d.rank().Before(other.rank())
}

func (d Date) rank() time.Time {
	if !d.Valid {
		return time.Time{}
	}

	return d.Time
}

// DayKey returns the calendar day as YYYY-MM-DD, or "" for an invalid Date.
func (d Date) DayKey() string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(time.DateOnly)
}

func (d Date) String() string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(time.DateOnly)
}

// UnmarshalJSON accepts a timestamp string, null, or garbage. Garbage
// produces an invalid Date, never an error: a malformed date is an expected
// data state, not a reason to reject the whole payload.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}

	*d = ParseDate(s)

	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Scan implements sql.Scanner. NULL scans as an invalid Date.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = Date{Time: v, Valid: true}
	case string:
		*d = ParseDate(v)
	case []byte:
		*d = ParseDate(string(v))
	default:
		return fmt.Errorf("scanning date: unsupported type %T", src)
	}

	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}

	return d.Time, nil
}
