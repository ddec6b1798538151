package driving

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// BatchService resolves an ordered list of disease names, tolerating
// per-item failures.
type BatchService interface {
	// Process resolves each name strictly sequentially and returns one
	// item per input name, in input order. A failing item is recorded
	// and never aborts the batch.
	Process(ctx context.Context, names []string, opts domain.LookupOptions) *domain.BatchReport
}
