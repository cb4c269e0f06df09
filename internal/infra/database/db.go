package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

const schemaActivations = `
CREATE TABLE IF NOT EXISTS activations (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    block_name   TEXT NOT NULL,
    cause        TEXT NOT NULL,
    activated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activations_activated_at
    ON activations (activated_at DESC);
`

// NewSQLiteConnection opens (creating if necessary) the activation history
// database and ensures the schema exists.
func NewSQLiteConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// The daemon is the only writer; a single connection avoids
	// SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	if _, err = db.Exec(schemaActivations); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure history schema: %w", err)
	}

	return db, nil
}
