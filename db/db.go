// ABOUTME: Database connection management and health reporting
// ABOUTME: Handles opening SQLite with WAL mode and best-effort index creation
package db

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

func Open(path string) (*sql.DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Open database with WAL mode
	database, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// Single writer connection avoids database locked errors
	database.SetMaxOpenConns(1)

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, err
	}

	// Secondary indexes are a performance concern, not a correctness one.
	EnsureIndexes(database)

	return database, nil
}

// EnsureIndexes creates secondary lookup indexes. Failures are logged and
// swallowed; a missing index degrades performance, not correctness.
func EnsureIndexes(database *sql.DB) {
	for _, stmt := range indexes {
		if _, err := database.Exec(stmt); err != nil {
			log.Printf("Failed to create index: %v (statement: %s)", err, stmt)
		}
	}
}

// Health summarizes store status for the health endpoint.
type Health struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Tables      int    `json:"tables,omitempty"`
	DataSize    int64  `json:"data_size,omitempty"`
	JournalMode string `json:"journal_mode,omitempty"`
}

// HealthCheck pings the store and gathers storage metrics. It reports
// failures in the returned struct instead of an error.
func HealthCheck(database *sql.DB) Health {
	if database == nil {
		return Health{Status: "error", Message: "not connected"}
	}
	if err := database.Ping(); err != nil {
		return Health{Status: "error", Message: err.Error()}
	}

	h := Health{Status: "healthy"}

	if err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&h.Tables); err != nil {
		return Health{Status: "error", Message: err.Error()}
	}

	var pageCount, pageSize int64
	if err := database.QueryRow("PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := database.QueryRow("PRAGMA page_size").Scan(&pageSize); err == nil {
			h.DataSize = pageCount * pageSize
		}
	}
	_ = database.QueryRow("PRAGMA journal_mode").Scan(&h.JournalMode)

	return h
}
