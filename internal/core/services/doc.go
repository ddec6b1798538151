// Package services implements the core resolution pipeline behind the
// driving ports: best-match ontology resolution, variant lookup with
// sequence enrichment, and sequential batch processing.
package services
