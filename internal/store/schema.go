package store

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements creates the event tables. Every event table carries the
// shared sequence and a timestamp, mirroring one another so that events of
// different types can be merged by sequence.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS answer_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp DATETIME NOT NULL,
		session_id TEXT NOT NULL,
		question_id TEXT NOT NULL,
		option_id TEXT NOT NULL,
		question_index INTEGER NOT NULL,
		weight REAL NOT NULL,
		replaced BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_session_id ON answer_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS diagnostic_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp DATETIME NOT NULL,
		session_id TEXT NOT NULL UNIQUE,
		bank_name TEXT NOT NULL,
		overall_score INTEGER NOT NULL,
		needs_consultation BOOLEAN NOT NULL,
		consultation_reason TEXT NOT NULL DEFAULT '',
		gaps TEXT NOT NULL,
		answers TEXT NOT NULL,
		duration_secs INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS diagnostic_results_timestamp ON diagnostic_results (timestamp)`,
}

// migrate applies the schema. Statements are idempotent.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
