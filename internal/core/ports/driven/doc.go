// Package driven defines the outbound port interfaces of the core:
// the remote resolution services the pipeline depends on and the batch
// report sinks. Adapters under internal/adapters/driven implement them.
package driven
