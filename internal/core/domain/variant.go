package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionalNamespace is the namespace of pipe-delimited positional
// variant identifiers in the knowledge graph.
const PositionalNamespace = "ROBO_VARIANT"

// DefaultPadding is the symmetric flanking margin, in bases, added around
// a variant's position before sequence retrieval.
const DefaultPadding = 100

// VariantRecord is a sequence variant node returned by the graph-query
// service.
type VariantRecord struct {
	// ID is the primary identifier of the variant.
	ID CURIE `json:"id"`

	// Name is the display name, when present.
	Name string `json:"name,omitempty"`

	// EquivalentIdentifiers lists alternative identifiers for the same
	// variant. At most one of them usually encodes a genomic position.
	EquivalentIdentifiers []string `json:"equivalent_identifiers,omitempty"`
}

// PositionalIdentifier returns the first equivalent identifier that
// parses as a positional variant identifier. The second return value is
// false when the record carries none; such records cannot be used for
// sequence retrieval and are skipped by callers.
func (v VariantRecord) PositionalIdentifier() (string, bool) {
	for _, id := range v.EquivalentIdentifiers {
		if _, err := ParsePositionalID(id); err == nil {
			return id, true
		}
	}
	return "", false
}

// Position parses the record's positional identifier, if any.
func (v VariantRecord) Position() (PositionalVariant, bool) {
	id, ok := v.PositionalIdentifier()
	if !ok {
		return PositionalVariant{}, false
	}
	pv, err := ParsePositionalID(id)
	if err != nil {
		return PositionalVariant{}, false
	}
	return pv, true
}

// GenomicRegion is a half-open coordinate range on a reference assembly.
type GenomicRegion struct {
	// Assembly is the reference assembly, e.g. "HG38".
	Assembly string `json:"assembly"`

	// Chromosome is the chromosome name without the "chr" prefix.
	Chromosome string `json:"chromosome"`

	// Start is the first coordinate of the range.
	Start int `json:"start"`

	// End is the last coordinate of the range.
	End int `json:"end"`
}

// Pad expands the region symmetrically by pad bases. The start is
// clamped at zero.
func (r GenomicRegion) Pad(pad int) GenomicRegion {
	start := r.Start - pad
	if start < 0 {
		start = 0
	}
	return GenomicRegion{
		Assembly:   r.Assembly,
		Chromosome: r.Chromosome,
		Start:      start,
		End:        r.End + pad,
	}
}

func (r GenomicRegion) String() string {
	return fmt.Sprintf("%s chr%s:%d-%d", strings.ToLower(r.Assembly), r.Chromosome, r.Start, r.End)
}

// PositionalVariant is the decoded form of a pipe-delimited positional
// variant identifier.
type PositionalVariant struct {
	// Region is the coordinate range of the variant.
	Region GenomicRegion `json:"region"`

	// Ref is the reference base or bases, when encoded.
	Ref string `json:"ref,omitempty"`

	// Alt is the alternate base or bases, when encoded.
	Alt string `json:"alt,omitempty"`
}

// ParsePositionalID decodes a positional variant identifier of the form
//
//	[NAMESPACE:]ASSEMBLY|CHROMOSOME|START|END[|REF|ALT]
//
// e.g. "ROBO_VARIANT:HG38|11|5008472|5008473|C|T". The namespace prefix
// is optional; the first four pipe-delimited fields are required.
func ParsePositionalID(id string) (PositionalVariant, error) {
	parts := strings.Split(id, "|")
	if len(parts) < 4 {
		return PositionalVariant{}, fmt.Errorf("%w: positional identifier %q has %d fields, want at least 4",
			ErrInvalidInput, id, len(parts))
	}

	assembly := parts[0]
	if i := strings.LastIndex(assembly, ":"); i >= 0 {
		assembly = assembly[i+1:]
	}
	if assembly == "" {
		return PositionalVariant{}, fmt.Errorf("%w: positional identifier %q has no assembly", ErrInvalidInput, id)
	}
	if parts[1] == "" {
		return PositionalVariant{}, fmt.Errorf("%w: positional identifier %q has no chromosome", ErrInvalidInput, id)
	}

	start, err := strconv.Atoi(parts[2])
	if err != nil {
		return PositionalVariant{}, fmt.Errorf("%w: positional identifier %q: bad start: %v", ErrInvalidInput, id, err)
	}
	end, err := strconv.Atoi(parts[3])
	if err != nil {
		return PositionalVariant{}, fmt.Errorf("%w: positional identifier %q: bad end: %v", ErrInvalidInput, id, err)
	}

	pv := PositionalVariant{
		Region: GenomicRegion{
			Assembly:   assembly,
			Chromosome: parts[1],
			Start:      start,
			End:        end,
		},
	}
	if len(parts) > 4 {
		pv.Ref = parts[4]
	}
	if len(parts) > 5 {
		pv.Alt = parts[5]
	}
	return pv, nil
}
