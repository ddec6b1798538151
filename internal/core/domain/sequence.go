package domain

import "strings"

// fastaLineWidth is the sequence wrap width used when rendering FASTA.
const fastaLineWidth = 60

// SequenceRecord is a reference sequence fetched for a genomic region.
// The sequence length is not validated against the region.
type SequenceRecord struct {
	// Region is the (padded) range the sequence was fetched for.
	Region GenomicRegion `json:"region"`

	// Header is the FASTA header as returned by the sequence service,
	// without the leading ">".
	Header string `json:"header,omitempty"`

	// Sequence is the raw sequence over {A,C,G,T,N}.
	Sequence string `json:"sequence"`
}

// FASTA renders the record as a FASTA entry with 60-column wrapped
// sequence lines and a trailing newline.
func (s SequenceRecord) FASTA() string {
	header := s.Header
	if header == "" {
		header = s.Region.String()
	}

	var b strings.Builder
	b.WriteString(">")
	b.WriteString(header)
	b.WriteString("\n")
	for i := 0; i < len(s.Sequence); i += fastaLineWidth {
		end := i + fastaLineWidth
		if end > len(s.Sequence) {
			end = len(s.Sequence)
		}
		b.WriteString(s.Sequence[i:end])
		b.WriteString("\n")
	}
	return b.String()
}
