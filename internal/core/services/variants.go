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

// Ensure VariantService implements the interface.
var _ driving.VariantService = (*VariantService)(nil)

// VariantService finds sequence variants for a disease and fetches their
// flanking reference sequence.
type VariantService struct {
	graph     driven.GraphQuerier
	sequences driven.SequenceFetcher
	resolver  driving.ResolverService
}

// NewVariantService creates a variant service. The resolver is only
// needed for disease-name entry points and may be nil when callers
// always supply ontology identifiers.
func NewVariantService(
	graph driven.GraphQuerier,
	sequences driven.SequenceFetcher,
	resolver driving.ResolverService,
) *VariantService {
	return &VariantService{
		graph:     graph,
		sequences: sequences,
		resolver:  resolver,
	}
}

// VariantsForDisease queries the knowledge graph for sequence variants
// linked to the ontology identifier. Results are deduplicated by primary
// identifier, first occurrence wins.
func (s *VariantService) VariantsForDisease(
	ctx context.Context, id domain.CURIE,
) ([]domain.VariantRecord, error) {
	logger.Section("Variant Lookup")

	if strings.TrimSpace(string(id)) == "" || id.Namespace() == "" {
		return nil, fmt.Errorf("%w: %q is not a namespaced ontology identifier", domain.ErrInvalidInput, id)
	}

	logger.Debug("Querying variants for %s", id)
	variants, err := s.graph.VariantsForDisease(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("variants for %s: %w", id, err)
	}

	variants = dedupeByID(variants)
	if len(variants) == 0 {
		logger.Warn("No sequence variants found for %s", id)
		return nil, fmt.Errorf("%w: no sequence variants for %s", domain.ErrNotFound, id)
	}

	logger.Info("Found %d sequence variants for %s", len(variants), id)
	return variants, nil
}

// VariantsForDiseaseName resolves the disease name first, then queries
// the graph with the resulting identifier.
func (s *VariantService) VariantsForDiseaseName(
	ctx context.Context, name string,
) ([]domain.VariantRecord, error) {
	if s.resolver == nil {
		return nil, fmt.Errorf("%w: no resolver configured", domain.ErrInvalidInput)
	}

	match, err := s.resolver.Resolve(ctx, name, domain.DefaultLookupOptions())
	if err != nil {
		return nil, err
	}
	return s.VariantsForDisease(ctx, match.CURIE)
}

// FetchSequence retrieves the reference sequence around the variant's
// position, padded symmetrically. A negative padding selects the
// default. Variants without a positional identifier return
// domain.ErrNoPositionalIdentifier and are skipped by callers; the
// failure of one variant never aborts a batch of fetches.
func (s *VariantService) FetchSequence(
	ctx context.Context, v domain.VariantRecord, padding int,
) (*domain.SequenceRecord, error) {
	pos, ok := v.Position()
	if !ok {
		return nil, fmt.Errorf("%w: variant %s", domain.ErrNoPositionalIdentifier, v.ID)
	}
	return s.fetchPadded(ctx, pos, padding)
}

// FetchRegion parses a positional identifier directly and fetches the
// padded sequence around it.
func (s *VariantService) FetchRegion(
	ctx context.Context, positionalID string, padding int,
) (*domain.SequenceRecord, error) {
	pos, err := domain.ParsePositionalID(positionalID)
	if err != nil {
		return nil, err
	}
	return s.fetchPadded(ctx, pos, padding)
}

func (s *VariantService) fetchPadded(
	ctx context.Context, pos domain.PositionalVariant, padding int,
) (*domain.SequenceRecord, error) {
	if padding < 0 {
		padding = domain.DefaultPadding
	}
	region := pos.Region.Pad(padding)
	logger.Debug("Fetching sequence for %s (padding %d)", region, padding)

	rec, err := s.sequences.Fetch(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", region, err)
	}
	return rec, nil
}

// dedupeByID drops repeated primary identifiers, keeping the first
// occurrence of each.
func dedupeByID(variants []domain.VariantRecord) []domain.VariantRecord {
	seen := make(map[domain.CURIE]bool, len(variants))
	out := make([]domain.VariantRecord, 0, len(variants))
	for _, v := range variants {
		if v.ID != "" && seen[v.ID] {
			continue
		}
		seen[v.ID] = true
		out = append(out, v)
	}
	return out
}
