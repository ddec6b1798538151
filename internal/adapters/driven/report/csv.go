package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
)

// csvHeader is the fixed column order of CSV reports.
var csvHeader = []string{"name", "identifier", "label", "score", "status"}

// CSVWriter emits one row per input name, in input order. Not-found
// items leave the identifier, label and score columns empty.
type CSVWriter struct {
	out io.Writer
}

var _ driven.BatchReportWriter = (*CSVWriter)(nil)

// NewCSVWriter creates a writer emitting to out.
func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{out: out}
}

// Write serialises the report as CSV with a header row.
func (w *CSVWriter) Write(_ context.Context, report *domain.BatchReport) error {
	cw := csv.NewWriter(w.out)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range report.Items {
		item := &report.Items[i]
		row := []string{item.Name, "", "", "", string(item.Status)}
		if item.Match != nil {
			row[1] = item.Match.CURIE.String()
			row[2] = item.Match.Label
			row[3] = strconv.FormatFloat(item.Match.Score, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row for %q: %w", item.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

// ReadReport parses a CSV report back into batch items. Scores survive
// the round trip exactly.
func ReadReport(r io.Reader) ([]domain.BatchItem, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("report has no header row")
	}

	items := make([]domain.BatchItem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("row has %d columns, want %d", len(row), len(csvHeader))
		}
		item := domain.BatchItem{Name: row[0], Status: domain.BatchStatus(row[4])}
		if row[1] != "" {
			score, err := strconv.ParseFloat(row[3], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing score for %q: %w", row[0], err)
			}
			item.Match = &domain.OntologyMatch{
				CURIE: domain.CURIE(row[1]),
				Label: row[2],
				Score: score,
			}
		}
		items = append(items, item)
	}
	return items, nil
}
