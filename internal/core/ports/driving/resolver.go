package driving

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// ResolverService resolves disease names to ontology identifiers.
type ResolverService interface {
	// Resolve returns the single best match for the disease name within
	// the configured namespace: highest score wins, first-seen wins on
	// exact score ties. Returns domain.ErrNotFound when no candidate
	// carries the namespace.
	Resolve(ctx context.Context, name string, opts domain.LookupOptions) (*domain.OntologyMatch, error)
}
