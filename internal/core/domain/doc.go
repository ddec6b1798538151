// Package domain contains the core types of the giraffe resolution
// pipeline: ontology identifiers, name-resolution matches, sequence
// variants with their genomic coordinates, fetched reference sequences,
// and batch run results. Domain types carry no I/O; all network access
// lives behind the driven ports.
package domain
