// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants resolve disease names, list linked sequence
// variants and fetch flanking reference sequence.
package mcp

import "errors"

var (
	// ErrMissingResolverService is returned when the resolver service is not provided.
	ErrMissingResolverService = errors.New("mcp: resolver service is required")

	// ErrMissingVariantService is returned when the variant service is not provided.
	ErrMissingVariantService = errors.New("mcp: variant service is required")
)
