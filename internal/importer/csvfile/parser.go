// Package csvfile parses bank statement CSV exports into transaction
// parameters. The header row is located by landmark matching rather than
// assumed to be first: statements usually open with account metadata.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	enc "github.com/anaramires/tally/internal/encoding"
	"github.com/anaramires/tally/internal/transaction"
)

// Recognized header labels, case-insensitive.
const (
	colDate     = "date"
	colDesc     = "description"
	colAmount   = "amount"
	colCurrency = "currency"
	colType     = "type"
)

type Parser struct {
	defaultCurrency string
}

func NewParser(defaultCurrency string) *Parser {
	return &Parser{defaultCurrency: strings.ToUpper(defaultCurrency)}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var params []transaction.CreateParams

	idx := columnIndex{date: -1, desc: -1, amount: -1, currency: -1, typ: -1}
	headerFound := false

	for _, row := range rows {
		if !headerFound {
			if found, cols := matchHeader(row); found {
				idx = cols
				headerFound = true
			}

			continue
		}

		param, ok := p.parseRow(row, idx)
		if !ok {
			// Footer lines, running balances and malformed rows are
			// skipped; a statement import should survive sloppy exports.
			continue
		}

		params = append(params, param)
	}

	if !headerFound {
		return nil, fmt.Errorf("no header row found (need at least %q and %q columns)", colDate, colAmount)
	}

	return params, nil
}

type columnIndex struct {
	date     int
	desc     int
	amount   int
	currency int
	typ      int
}

// matchHeader reports whether row looks like the statement header. Date and
// amount are the landmarks; the rest are optional.
func matchHeader(row []string) (bool, columnIndex) {
	idx := columnIndex{date: -1, desc: -1, amount: -1, currency: -1, typ: -1}
	matches := 0

	for i, col := range row {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case colDate:
			idx.date = i
			matches++
		case colDesc:
			idx.desc = i
			matches++
		case colAmount:
			idx.amount = i
			matches++
		case colCurrency:
			idx.currency = i
		case colType:
			idx.typ = i
		}
	}

	return idx.date != -1 && idx.amount != -1 && matches >= 2, idx
}

func (p *Parser) parseRow(row []string, idx columnIndex) (transaction.CreateParams, bool) {
	maxIdx := idx.date
	if idx.amount > maxIdx {
		maxIdx = idx.amount
	}

	if len(row) <= maxIdx {
		return transaction.CreateParams{}, false
	}

	date := transaction.ParseDate(row[idx.date])
	if !date.Valid {
		return transaction.CreateParams{}, false
	}

	cents, err := parseAmount(strings.TrimSpace(row[idx.amount]))
	if err != nil {
		return transaction.CreateParams{}, false
	}

	description := ""
	if idx.desc != -1 && idx.desc < len(row) {
		description = strings.TrimSpace(row[idx.desc])
	}

	currency := p.defaultCurrency
	if idx.currency != -1 && idx.currency < len(row) {
		if c := strings.ToUpper(strings.TrimSpace(row[idx.currency])); c != "" {
			currency = c
		}
	}

	// The sign decides the direction unless an explicit type column says
	// otherwise (needed for transfers, which a sign cannot express).
	txType := transaction.TypeIncome
	if cents < 0 {
		txType = transaction.TypeExpense
		cents = -cents
	}

	if idx.typ != -1 && idx.typ < len(row) {
		if explicit := transaction.Type(strings.ToLower(strings.TrimSpace(row[idx.typ]))); explicit.Valid() {
			txType = explicit
		}
	}

	return transaction.CreateParams{
		Amount:      cents,
		Currency:    currency,
		Type:        txType,
		Description: description,
		Date:        date,
	}, true
}

// parseAmount accepts "1.234,56", "1,234.56", "-588.74" and "8608,52",
// returning signed cents.
func parseAmount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')

	clean := s

	switch {
	case lastComma > lastDot:
		// Comma is the decimal separator, dots are thousands.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	default:
		// Dot decimal (or integer); commas are thousands.
		clean = strings.ReplaceAll(clean, ",", "")
	}

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, err
	}

	return int64(math.Round(val * 100)), nil
}

// detectDelimiter picks ';' or ',' by which occurs more often in the file.
// European exports favor ';' since ',' is their decimal separator.
func detectDelimiter(data []byte) rune {
	if bytes.Count(data, []byte(",")) > bytes.Count(data, []byte(";")) {
		return ','
	}

	return ';'
}
