// ABOUTME: Tests for store open, schema, and health reporting
// ABOUTME: Uses throwaway SQLite files under t.TempDir
package db

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer database.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}
	if count < 10 {
		t.Errorf("Expected at least 10 tables, got %d", count)
	}

	var mode string
	err = database.QueryRow("PRAGMA journal_mode").Scan(&mode)
	if err != nil {
		t.Fatalf("Failed to query journal mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("Expected WAL mode, got %s", mode)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open("/invalid/nonexistent/path/that/cannot/be/created/test.db")
	if err == nil {
		t.Error("Expected error for invalid path, but Open succeeded")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Initial Open failed: %v", err)
	}
	database.Close()

	database, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Re-open failed: %v", err)
	}
	defer database.Close()

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table'").Scan(&count); err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}
	if count < 10 {
		t.Errorf("Expected at least 10 tables after re-open, got %d", count)
	}
}

func TestEnsureIndexesIsIdempotent(t *testing.T) {
	database := setupTestDB(t)

	// Second run must not error out; failures are logged, not returned.
	EnsureIndexes(database)
	EnsureIndexes(database)

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name LIKE 'idx_%'").Scan(&count); err != nil {
		t.Fatalf("Failed to query indexes: %v", err)
	}
	if count < 20 {
		t.Errorf("Expected at least 20 secondary indexes, got %d", count)
	}
}

func TestHealthCheck(t *testing.T) {
	database := setupTestDB(t)

	h := HealthCheck(database)
	if h.Status != "healthy" {
		t.Fatalf("Expected healthy status, got %s (%s)", h.Status, h.Message)
	}
	if h.Tables < 10 {
		t.Errorf("Expected table count in health report, got %d", h.Tables)
	}
	if h.DataSize <= 0 {
		t.Errorf("Expected positive data size, got %d", h.DataSize)
	}
}

func TestHealthCheckNotConnected(t *testing.T) {
	h := HealthCheck(nil)
	if h.Status != "error" {
		t.Errorf("Expected error status for nil store, got %s", h.Status)
	}

	database := setupTestDB(t)
	database.Close()
	h = HealthCheck(database)
	if h.Status != "error" {
		t.Errorf("Expected error status for closed store, got %s", h.Status)
	}
}
