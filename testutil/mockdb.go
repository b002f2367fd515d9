package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the
// venuechatKV table for testing
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}

	// Each sqlite connection gets its own :memory: database, so pin the
	// pool to a single connection.
	db.SetMaxOpenConns(1)

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS venuechatKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create venuechatKV table: %v", err)
	}

	return db
}

// InsertKV inserts a key-value pair into the database
func InsertKV(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO venuechatKV (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert key %s: %v", key, err)
	}
}

// ReadKV reads a value from the database, failing the test if absent
func ReadKV(t *testing.T, db *sql.DB, key string) string {
	t.Helper()
	var value sql.NullString
	row := db.QueryRow("SELECT value FROM venuechatKV WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		t.Fatalf("Failed to read key %s: %v", key, err)
	}
	if !value.Valid {
		t.Fatalf("Key %s holds NULL", key)
	}
	return value.String
}

// CreateSeededDB creates an in-memory database pre-loaded with a
// snapshot and a profile
func CreateSeededDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryDB(t)
	InsertKV(t, db, "venuechat:profile", SampleProfileJSON)
	InsertKV(t, db, "venuechat:snapshot", SampleSnapshotJSON)
	return db
}
