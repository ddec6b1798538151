// Package driving defines the inbound port interfaces of the core.
// The CLI and MCP adapters drive the pipeline exclusively through these
// interfaces, which the services under internal/core/services implement.
package driving
