package driven

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// GraphQuerier queries the knowledge-graph service for nodes associated
// with an ontology identifier.
type GraphQuerier interface {
	// VariantsForDisease returns the sequence variants linked to the
	// disease identifier, in response order, without deduplication.
	VariantsForDisease(ctx context.Context, id domain.CURIE) ([]domain.VariantRecord, error)
}
