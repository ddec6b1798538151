package driving

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// VariantService finds sequence variants for diseases and fetches their
// flanking reference sequence.
type VariantService interface {
	// VariantsForDisease returns the variants linked to an ontology
	// identifier, deduplicated by primary identifier (first occurrence
	// wins). Returns domain.ErrNotFound when the graph knows none.
	VariantsForDisease(ctx context.Context, id domain.CURIE) ([]domain.VariantRecord, error)

	// VariantsForDiseaseName resolves the name first, then queries the
	// graph with the resulting identifier.
	VariantsForDiseaseName(ctx context.Context, name string) ([]domain.VariantRecord, error)

	// FetchSequence fetches the reference sequence around the variant's
	// position, padded symmetrically. A negative padding selects the
	// default. Returns domain.ErrNoPositionalIdentifier for variants
	// without a positional identifier; callers skip those.
	FetchSequence(ctx context.Context, v domain.VariantRecord, padding int) (*domain.SequenceRecord, error)

	// FetchRegion parses a positional identifier and fetches the padded
	// sequence around it.
	FetchRegion(ctx context.Context, positionalID string, padding int) (*domain.SequenceRecord, error)
}
