package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

func TestReadNames_SkipsBlanksAndComments(t *testing.T) {
	input := "# cohort diseases\n\nsickle cell disease\nbreast cancer\n"

	names, err := ReadNames(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"sickle cell disease", "breast cancer"}, names)
}

func TestReadNames_TrimsWhitespace(t *testing.T) {
	input := "  lung cancer  \n\t\n   # indented comment\n"

	names, err := ReadNames(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"lung cancer"}, names)
}

func TestReadNames_EmptyInput(t *testing.T) {
	names, err := ReadNames(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestBatchService_Process_PreservesOrder(t *testing.T) {
	resolver := NewResolverService(&mockNameResolver{
		candidates: []domain.OntologyMatch{
			{CURIE: "MONDO:0004992", Label: "cancer", Score: 10},
		},
	}, "MONDO")
	svc := NewBatchService(resolver)

	names := []string{"breast cancer", "lung cancer", "colorectal cancer"}
	report := svc.Process(context.Background(), names, domain.DefaultLookupOptions())

	require.Len(t, report.Items, 3)
	for i, name := range names {
		assert.Equal(t, name, report.Items[i].Name)
		assert.Equal(t, domain.StatusFound, report.Items[i].Status)
	}
	assert.Equal(t, 3, report.Found())
	assert.NotEmpty(t, report.RunID)
}

func TestBatchService_Process_FailureDoesNotAbortBatch(t *testing.T) {
	resolver := NewResolverService(&failOnNameResolver{
		failName: "bad entry",
		err:      domain.ErrUpstream,
		match:    domain.OntologyMatch{CURIE: "MONDO:0011382", Label: "sickle cell disease", Score: 42},
	}, "MONDO")
	svc := NewBatchService(resolver)

	report := svc.Process(context.Background(),
		[]string{"sickle cell disease", "bad entry", "breast cancer"},
		domain.DefaultLookupOptions())

	require.Len(t, report.Items, 3)

	assert.Equal(t, domain.StatusFound, report.Items[0].Status)
	assert.Equal(t, domain.StatusNotFound, report.Items[1].Status)
	assert.NotEmpty(t, report.Items[1].Error)
	assert.Nil(t, report.Items[1].Match)
	assert.Equal(t, domain.StatusFound, report.Items[2].Status)

	assert.Equal(t, 2, report.Found())
}

func TestBatchService_Process_NotFoundRecordedWithoutError(t *testing.T) {
	resolver := NewResolverService(&mockNameResolver{}, "MONDO")
	svc := NewBatchService(resolver)

	report := svc.Process(context.Background(), []string{"unknown disease"}, domain.DefaultLookupOptions())

	require.Len(t, report.Items, 1)
	assert.Equal(t, domain.StatusNotFound, report.Items[0].Status)
	assert.Empty(t, report.Items[0].Error, "plain not-found carries no error detail")
}

func TestBatchService_Process_RepeatedNamesNotDeduplicated(t *testing.T) {
	mock := &mockNameResolver{
		candidates: []domain.OntologyMatch{
			{CURIE: "MONDO:0007254", Label: "breast carcinoma", Score: 80},
		},
	}
	svc := NewBatchService(NewResolverService(mock, "MONDO"))

	report := svc.Process(context.Background(),
		[]string{"breast cancer", "breast cancer"},
		domain.DefaultLookupOptions())

	require.Len(t, report.Items, 2)
	assert.Equal(t, 2, mock.calls, "each occurrence issues its own query")
}

func TestBatchService_EndToEndFromFile(t *testing.T) {
	// A list with one comment, one blank line and two names yields two
	// items in original order even when one query fails upstream.
	input := "# test cohort\n\nsickle cell disease\nbad entry\n"
	names, err := ReadNames(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, names, 2)

	resolver := NewResolverService(&failOnNameResolver{
		failName: "bad entry",
		err:      domain.ErrNetwork,
		match:    domain.OntologyMatch{CURIE: "MONDO:0011382", Label: "sickle cell disease", Score: 42},
	}, "MONDO")
	report := NewBatchService(resolver).Process(context.Background(), names, domain.DefaultLookupOptions())

	require.Len(t, report.Items, 2)
	assert.Equal(t, "sickle cell disease", report.Items[0].Name)
	assert.Equal(t, domain.StatusFound, report.Items[0].Status)
	assert.Equal(t, "bad entry", report.Items[1].Name)
	assert.Equal(t, domain.StatusNotFound, report.Items[1].Status)
}
