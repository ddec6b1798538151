package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

// ResolveInput is the input schema for the resolve_disease tool.
type ResolveInput struct {
	Name  string `json:"name" jsonschema:"the disease name to resolve"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of candidates to consider (default 10)"`
}

// ResolveOutput is the output schema for the resolve_disease tool.
type ResolveOutput struct {
	Identifier string   `json:"identifier"`
	Label      string   `json:"label"`
	Score      float64  `json:"score"`
	Synonyms   []string `json:"synonyms,omitempty"`
}

// VariantsInput is the input schema for the disease_variants tool.
type VariantsInput struct {
	Identifier string `json:"identifier,omitempty" jsonschema:"the ontology identifier of the disease, e.g. MONDO:0011382"`
	Name       string `json:"name,omitempty" jsonschema:"the disease name, resolved first when no identifier is given"`
}

// VariantsOutput is the output schema for the disease_variants tool.
type VariantsOutput struct {
	Variants []VariantOutput `json:"variants"`
	Count    int             `json:"count"`
}

// VariantOutput represents a single sequence variant.
type VariantOutput struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name,omitempty"`
	EquivalentIdentifiers []string `json:"equivalent_identifiers,omitempty"`
}

// SequenceInput is the input schema for the fetch_sequence tool.
type SequenceInput struct {
	PositionalID string `json:"positional_id" jsonschema:"a positional variant identifier, e.g. ROBO_VARIANT:HG38|11|5008472|5008473|C|T"`
	Padding      int    `json:"padding,omitempty" jsonschema:"symmetric flanking margin in bases (default 100)"`
}

// SequenceOutput is the output schema for the fetch_sequence tool.
type SequenceOutput struct {
	Region   string `json:"region"`
	Header   string `json:"header"`
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_disease",
		Description: "Resolve a disease name to its MONDO ontology identifier",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "disease_variants",
		Description: "List the sequence variants linked to a disease in the knowledge graph",
	}, s.handleVariants)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_sequence",
		Description: "Fetch padded reference sequence around a positional variant identifier",
	}, s.handleSequence)
}

// handleResolve handles the resolve_disease tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	opts := domain.DefaultLookupOptions()
	if input.Limit > 0 {
		opts.Limit = input.Limit
	}

	match, err := s.ports.Resolver.Resolve(ctx, input.Name, opts)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	return nil, ResolveOutput{
		Identifier: match.CURIE.String(),
		Label:      match.Label,
		Score:      match.Score,
		Synonyms:   match.Synonyms,
	}, nil
}

// handleVariants handles the disease_variants tool invocation.
func (s *Server) handleVariants(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VariantsInput,
) (*mcp.CallToolResult, VariantsOutput, error) {
	var variants []domain.VariantRecord
	var err error

	if input.Identifier != "" {
		variants, err = s.ports.Variants.VariantsForDisease(ctx, domain.CURIE(input.Identifier))
	} else {
		variants, err = s.ports.Variants.VariantsForDiseaseName(ctx, input.Name)
	}
	if err != nil {
		return nil, VariantsOutput{}, err
	}

	output := VariantsOutput{
		Variants: make([]VariantOutput, len(variants)),
		Count:    len(variants),
	}
	for i := range variants {
		output.Variants[i] = VariantOutput{
			ID:                    variants[i].ID.String(),
			Name:                  variants[i].Name,
			EquivalentIdentifiers: variants[i].EquivalentIdentifiers,
		}
	}

	return nil, output, nil
}

// handleSequence handles the fetch_sequence tool invocation.
func (s *Server) handleSequence(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SequenceInput,
) (*mcp.CallToolResult, SequenceOutput, error) {
	padding := input.Padding
	if padding <= 0 {
		padding = domain.DefaultPadding
	}

	rec, err := s.ports.Variants.FetchRegion(ctx, input.PositionalID, padding)
	if err != nil {
		return nil, SequenceOutput{}, err
	}

	return nil, SequenceOutput{
		Region:   rec.Region.String(),
		Header:   rec.Header,
		Sequence: rec.Sequence,
		Length:   len(rec.Sequence),
	}, nil
}
