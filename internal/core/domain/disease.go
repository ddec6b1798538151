package domain

// LookupOptions mirror the query parameters of the name-resolution service.
type LookupOptions struct {
	// Limit is the maximum number of candidates to request.
	Limit int

	// Offset is the pagination offset.
	Offset int

	// Autocomplete enables partial-name matching.
	Autocomplete bool

	// Highlighting enables match highlighting in the response.
	Highlighting bool
}

// DefaultLookupOptions returns the options the original tooling queries with.
func DefaultLookupOptions() LookupOptions {
	return LookupOptions{
		Limit:        10,
		Autocomplete: true,
	}
}

// OntologyMatch is a single candidate entry returned by the
// name-resolution service for a disease name.
type OntologyMatch struct {
	// CURIE is the namespaced ontology identifier, e.g. "MONDO:0011382".
	CURIE CURIE `json:"curie"`

	// Label is the canonical name of the matched concept.
	Label string `json:"label"`

	// Score is the relevance score assigned by the service.
	Score float64 `json:"score"`

	// Types are the semantic type tags of the concept.
	Types []string `json:"types,omitempty"`

	// Synonyms are alternative names, when the service returns them.
	Synonyms []string `json:"synonyms,omitempty"`
}
