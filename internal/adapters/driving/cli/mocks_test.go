package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// mockResolverService is a mock implementation of driving.ResolverService.
type mockResolverService struct {
	match    *domain.OntologyMatch
	err      error
	lastOpts domain.LookupOptions
}

func (m *mockResolverService) Resolve(
	_ context.Context, _ string, opts domain.LookupOptions,
) (*domain.OntologyMatch, error) {
	m.lastOpts = opts
	return m.match, m.err
}

// mockVariantService is a mock implementation of driving.VariantService.
// FetchSequence honours positional semantics so skip behaviour is
// exercised with mixed variant lists.
type mockVariantService struct {
	variants    []domain.VariantRecord
	sequence    *domain.SequenceRecord
	err         error
	lastID      domain.CURIE
	lastName    string
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
	_ context.Context, v domain.VariantRecord, padding int,
) (*domain.SequenceRecord, error) {
	m.lastPadding = padding
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := v.Position(); !ok {
		return nil, fmt.Errorf("%w: variant %s", domain.ErrNoPositionalIdentifier, v.ID)
	}
	return m.sequence, nil
}

func (m *mockVariantService) FetchRegion(
	_ context.Context, positionalID string, padding int,
) (*domain.SequenceRecord, error) {
	m.lastPadding = padding
	if m.err != nil {
		return nil, m.err
	}
	if _, err := domain.ParsePositionalID(positionalID); err != nil {
		return nil, err
	}
	return m.sequence, nil
}

// mockBatchService is a mock implementation of driving.BatchService.
// Names present in matches resolve; every other name is not found.
type mockBatchService struct {
	matches map[string]*domain.OntologyMatch
}

func (m *mockBatchService) Process(
	_ context.Context, names []string, _ domain.LookupOptions,
) *domain.BatchReport {
	report := domain.NewBatchReport()
	for _, name := range names {
		item := domain.BatchItem{Name: name, Status: domain.StatusNotFound}
		if match, ok := m.matches[name]; ok {
			item.Status = domain.StatusFound
			item.Match = match
		}
		report.Items = append(report.Items, item)
	}
	return report
}

// errorResolverService always fails with a non-NotFound error.
type errorResolverService struct{}

func (errorResolverService) Resolve(
	_ context.Context, _ string, _ domain.LookupOptions,
) (*domain.OntologyMatch, error) {
	return nil, errors.New("resolution failed")
}

// sickleCellMatch is the canonical fixture used across command tests.
var sickleCellMatch = &domain.OntologyMatch{
	CURIE:    "MONDO:0011382",
	Label:    "sickle cell disease",
	Score:    42.0,
	Synonyms: []string{"HbS disease"},
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldResolver := resolverService
	oldVariants := variantService
	oldBatch := batchService
	oldPadding := configuredPadding

	region := domain.GenomicRegion{Assembly: "HG38", Chromosome: "11", Start: 5008372, End: 5008573}
	resolverService = &mockResolverService{match: sickleCellMatch}
	variantService = &mockVariantService{
		variants: []domain.VariantRecord{
			{
				ID:   "CAID:CA6146346",
				Name: "rs334",
				EquivalentIdentifiers: []string{
					"DBSNP:rs334",
					"ROBO_VARIANT:HG38|11|5008472|5008473|C|T",
				},
			},
			{ID: "CAID:CA9994266", EquivalentIdentifiers: []string{"DBSNP:rs11886868"}},
		},
		sequence: &domain.SequenceRecord{
			Region:   region,
			Sequence: "ACGTACGTAC",
		},
	}
	batchService = &mockBatchService{
		matches: map[string]*domain.OntologyMatch{"sickle cell disease": sickleCellMatch},
	}
	configuredPadding = domain.DefaultPadding

	return func() {
		resolverService = oldResolver
		variantService = oldVariants
		batchService = oldBatch
		configuredPadding = oldPadding
	}
}
