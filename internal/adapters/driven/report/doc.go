// Package report writes batch reports to their output formats: JSON for
// machine consumption, CSV for spreadsheets, SQLite for querying runs.
package report
