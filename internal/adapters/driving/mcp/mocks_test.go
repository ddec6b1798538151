package mcp

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// mockResolverService is a mock implementation of driving.ResolverService.
type mockResolverService struct {
	match    *domain.OntologyMatch
	err      error
	lastOpts domain.LookupOptions
}

func (m *mockResolverService) Resolve(
	_ context.Context,
	_ string,
	opts domain.LookupOptions,
) (*domain.OntologyMatch, error) {
	m.lastOpts = opts
	return m.match, m.err
}

// mockVariantService is a mock implementation of driving.VariantService.
type mockVariantService struct {
	variants    []domain.VariantRecord
	sequence    *domain.SequenceRecord
	err         error
	lastID      domain.CURIE
	lastName    string
	lastPosID   string
	lastPadding int
}

func (m *mockVariantService) VariantsForDisease(
	_ context.Context, id domain.CURIE,
) ([]domain.VariantRecord, error) {
	m.lastID = id
	return m.variants, m.err
}

func (m *mockVariantService) VariantsForDiseaseName(
	_ context.Context, name string,
) ([]domain.VariantRecord, error) {
	m.lastName = name
	return m.variants, m.err
}

func (m *mockVariantService) FetchSequence(
	_ context.Context, _ domain.VariantRecord, padding int,
) (*domain.SequenceRecord, error) {
	m.lastPadding = padding
	return m.sequence, m.err
}

func (m *mockVariantService) FetchRegion(
	_ context.Context, positionalID string, padding int,
) (*domain.SequenceRecord, error) {
	m.lastPosID = positionalID
	m.lastPadding = padding
	return m.sequence, m.err
}
