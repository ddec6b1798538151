package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchStatus marks the outcome of a single batch query.
type BatchStatus string

const (
	// StatusFound indicates the disease name resolved to a match.
	StatusFound BatchStatus = "found"

	// StatusNotFound indicates the query completed without a qualifying
	// match, or failed upstream. Batch processing records the item and
	// continues.
	StatusNotFound BatchStatus = "not_found"
)

// BatchItem is the outcome of one query within a batch run.
type BatchItem struct {
	// Name is the disease name exactly as supplied.
	Name string `json:"name"`

	// Match is the best ontology match, nil when not found.
	Match *OntologyMatch `json:"match,omitempty"`

	// Status is the query outcome.
	Status BatchStatus `json:"status"`

	// Error carries the failure detail for non-NotFound errors
	// (network, upstream, malformed response).
	Error string `json:"error,omitempty"`
}

// BatchReport accumulates batch outcomes in input order.
type BatchReport struct {
	// RunID identifies this batch run.
	RunID string `json:"run_id"`

	// CreatedAt is when the run started.
	CreatedAt time.Time `json:"created_at"`

	// Items holds one entry per input name, in input order.
	// Repeated names are not deduplicated.
	Items []BatchItem `json:"items"`
}

// NewBatchReport creates an empty report with a fresh run identifier.
func NewBatchReport() *BatchReport {
	return &BatchReport{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Found counts the items that resolved successfully.
func (r *BatchReport) Found() int {
	n := 0
	for i := range r.Items {
		if r.Items[i].Status == StatusFound {
			n++
		}
	}
	return n
}
