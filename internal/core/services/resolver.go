package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driving"
	"github.com/giraffe-kg/giraffe-cli/internal/logger"
)

// Ensure ResolverService implements the interface.
var _ driving.ResolverService = (*ResolverService)(nil)

// DefaultNamespace is the ontology namespace qualifying matches must carry.
const DefaultNamespace = "MONDO"

// ResolverService resolves disease names to ontology identifiers using
// a name-resolution backend.
type ResolverService struct {
	resolver  driven.NameResolver
	namespace string
}

// NewResolverService creates a resolver service. An empty namespace
// selects DefaultNamespace.
func NewResolverService(resolver driven.NameResolver, namespace string) *ResolverService {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &ResolverService{
		resolver:  resolver,
		namespace: namespace,
	}
}

// Namespace returns the namespace prefix qualifying matches must carry.
func (s *ResolverService) Namespace() string {
	return s.namespace
}

// Resolve returns the best match for the disease name: the candidate
// with the highest score among those in the configured namespace. On an
// exact score tie the first-seen candidate wins, which keeps repeated
// queries deterministic against a stable upstream.
func (s *ResolverService) Resolve(
	ctx context.Context, name string, opts domain.LookupOptions,
) (*domain.OntologyMatch, error) {
	logger.Section("Name Resolution")

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty disease name", domain.ErrInvalidInput)
	}
	if opts.Limit <= 0 {
		opts.Limit = domain.DefaultLookupOptions().Limit
	}

	logger.Debug("Query: %q (limit=%d, offset=%d, autocomplete=%t)",
		name, opts.Limit, opts.Offset, opts.Autocomplete)

	candidates, err := s.resolver.Lookup(ctx, name, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", name, err)
	}
	logger.Debug("Candidates: %d", len(candidates))

	var best *domain.OntologyMatch
	for i := range candidates {
		if !candidates[i].CURIE.InNamespace(s.namespace) {
			continue
		}
		if best == nil || candidates[i].Score > best.Score {
			best = &candidates[i]
		}
	}

	if best == nil {
		logger.Warn("No %s match for %q", s.namespace, name)
		return nil, fmt.Errorf("%w: no %s match for %q", domain.ErrNotFound, s.namespace, name)
	}

	logger.Info("Resolved %q to %s (score %.2f)", name, best.CURIE, best.Score)
	return best, nil
}
