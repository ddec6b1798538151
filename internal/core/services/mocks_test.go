package services

import (
	"context"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// --- Mock implementations of the driven ports ---

// mockNameResolver implements driven.NameResolver for testing.
type mockNameResolver struct {
	candidates []domain.OntologyMatch
	err        error

	lastQuery string
	lastOpts  domain.LookupOptions
	calls     int
}

func (m *mockNameResolver) Lookup(
	_ context.Context, query string, opts domain.LookupOptions,
) ([]domain.OntologyMatch, error) {
	m.calls++
	m.lastQuery = query
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

// mockGraphQuerier implements driven.GraphQuerier for testing.
type mockGraphQuerier struct {
	variants []domain.VariantRecord
	err      error

	lastID domain.CURIE
}

func (m *mockGraphQuerier) VariantsForDisease(
	_ context.Context, id domain.CURIE,
) ([]domain.VariantRecord, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.variants, nil
}

// mockSequenceFetcher implements driven.SequenceFetcher for testing.
type mockSequenceFetcher struct {
	sequence string
	err      error

	lastRegion domain.GenomicRegion
}

func (m *mockSequenceFetcher) Fetch(
	_ context.Context, region domain.GenomicRegion,
) (*domain.SequenceRecord, error) {
	m.lastRegion = region
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SequenceRecord{Region: region, Sequence: m.sequence}, nil
}

// failOnNameResolver fails a specific query and succeeds on the rest.
type failOnNameResolver struct {
	failName string
	err      error
	match    domain.OntologyMatch
}

func (m *failOnNameResolver) Lookup(
	_ context.Context, query string, _ domain.LookupOptions,
) ([]domain.OntologyMatch, error) {
	if query == m.failName {
		return nil, m.err
	}
	return []domain.OntologyMatch{m.match}, nil
}
