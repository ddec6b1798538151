package driven

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// NameResolver looks up free-text concept names against the
// name-resolution service.
type NameResolver interface {
	// Lookup returns every candidate match the service offers for the
	// query, in whatever namespaces the service knows, unranked beyond
	// the per-candidate score. Selection is the caller's concern.
	Lookup(ctx context.Context, query string, opts domain.LookupOptions) ([]domain.OntologyMatch, error)
}
