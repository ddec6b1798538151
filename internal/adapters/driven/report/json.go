package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
)

// JSONWriter emits the report items as a JSON array, one object per
// input name, in input order.
type JSONWriter struct {
	out io.Writer
}

var _ driven.BatchReportWriter = (*JSONWriter)(nil)

// NewJSONWriter creates a writer emitting to out.
func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

// Write serialises the report items as indented JSON.
func (w *JSONWriter) Write(_ context.Context, report *domain.BatchReport) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report.Items); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
