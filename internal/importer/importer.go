package importer

import (
	"fmt"
	"io"

	"github.com/anaramires/tally/internal/importer/csvfile"
	"github.com/anaramires/tally/internal/transaction"
)

// Source identifies the statement format being imported.
type Source string

const (
	SourceCSV Source = "csv"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}

type Service struct {
	csvImporter Importer
}

// NewService builds the import service. defaultCurrency is applied to rows
// whose statement carries no currency column.
func NewService(defaultCurrency string) *Service {
	return &Service{
		csvImporter: csvfile.NewParser(defaultCurrency),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]transaction.CreateParams, error) {
	var imp Importer

	switch source {
	case SourceCSV:
		imp = s.csvImporter
	default:
		return nil, fmt.Errorf("unknown import source: %s", source)
	}

	return imp.Parse(r)
}
