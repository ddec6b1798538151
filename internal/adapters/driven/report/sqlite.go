package report

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
	"github.com/giraffe-kg/giraffe-cli/internal/core/ports/driven"
)

// schema holds the report tables. Runs append; results reference their
// run and keep the input position so order survives querying.
const schema = `
CREATE TABLE IF NOT EXISTS batch_runs (
	run_id     TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS batch_results (
	run_id     TEXT NOT NULL REFERENCES batch_runs(run_id),
	position   INTEGER NOT NULL,
	name       TEXT NOT NULL,
	identifier TEXT,
	label      TEXT,
	score      REAL,
	status     TEXT NOT NULL,
	error      TEXT,
	PRIMARY KEY (run_id, position)
);
`

// SQLiteWriter appends batch runs to a SQLite database file, creating
// it and its schema on first use.
type SQLiteWriter struct {
	path string
}

var _ driven.BatchReportWriter = (*SQLiteWriter)(nil)

// NewSQLiteWriter creates a writer targeting the database at path.
func NewSQLiteWriter(path string) *SQLiteWriter {
	return &SQLiteWriter{path: path}
}

// Write stores the report run and its results in one transaction.
func (w *SQLiteWriter) Write(ctx context.Context, report *domain.BatchReport) error {
	db, err := sql.Open("sqlite", w.path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO batch_runs (run_id, created_at) VALUES (?, ?)",
		report.RunID, report.CreatedAt,
	); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for i := range report.Items {
		item := &report.Items[i]
		var identifier, label any
		var score any
		if item.Match != nil {
			identifier = item.Match.CURIE.String()
			label = item.Match.Label
			score = item.Match.Score
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO batch_results (run_id, position, name, identifier, label, score, status, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			report.RunID, i, item.Name, identifier, label, score, string(item.Status), item.Error,
		); err != nil {
			return fmt.Errorf("inserting result for %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing report: %w", err)
	}
	return nil
}
