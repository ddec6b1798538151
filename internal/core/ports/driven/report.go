package driven

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// BatchReportWriter serialises a batch report to a caller-specified
// destination. Implementations exist for JSON, CSV and SQLite outputs.
type BatchReportWriter interface {
	Write(ctx context.Context, report *domain.BatchReport) error
}
