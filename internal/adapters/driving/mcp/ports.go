package mcp

import (
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point.
type Ports struct {
	// Resolver resolves disease names to ontology identifiers.
	Resolver driving.ResolverService

	// Variants finds sequence variants and fetches reference sequence.
	Variants driving.VariantService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Resolver == nil {
		return ErrMissingResolverService
	}
	if p.Variants == nil {
		return ErrMissingVariantService
	}
	return nil
}
