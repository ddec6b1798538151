package driven

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// SequenceFetcher retrieves reference sequence for a genomic region from
// the sequence-retrieval service.
type SequenceFetcher interface {
	// Fetch returns the sequence covering the region. The returned
	// sequence length is not validated against the region bounds.
	Fetch(ctx context.Context, region domain.GenomicRegion) (*domain.SequenceRecord, error)
}
