package internal

import (
	"context"
	"database/sql"
	"time"
)

// KVStore is the persistent key-value store snapshots are written to.
// Implementations must tolerate concurrent calls; the engine treats the
// store as best-effort durability only.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// SQLiteKV implements KVStore over the venuechatKV table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates a SQLiteKV over an already opened database.
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{db: db}
}

// OpenSQLiteKV opens (creating if needed) the database at path and wraps
// it in a SQLiteKV.
func OpenSQLiteKV(path string) (*SQLiteKV, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, &StorageError{Key: path, Op: "open", Err: err}
	}
	return NewSQLiteKV(db), nil
}

// Get reads the value stored under key. ok is false if the key is absent
// or holds NULL.
func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value sql.NullString
	row := s.db.QueryRowContext(ctx, "SELECT value FROM venuechatKV WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, &StorageError{Key: key, Op: "read", Err: err}
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO venuechatKV (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return &StorageError{Key: key, Op: "write", Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

// LoadOutcome reports how a bounded store read resolved.
type LoadOutcome int

const (
	// LoadOK means a value was read and returned.
	LoadOK LoadOutcome = iota
	// LoadEmpty means the key was absent or the read failed.
	LoadEmpty
	// LoadTimedOut means the read was abandoned after the deadline.
	LoadTimedOut
)

// ReadWithTimeout reads key from the store, abandoning the read after
// timeout. Read errors degrade to LoadEmpty; they are logged, not
// returned, because every caller falls back to empty state anyway.
func ReadWithTimeout(ctx context.Context, store KVStore, key string, timeout time.Duration) (string, LoadOutcome) {
	type result struct {
		value string
		ok    bool
		err   error
	}

	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan result, 1)
	go func() {
		value, ok, err := store.Get(rctx, key)
		ch <- result{value: value, ok: ok, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			LogWarn("read of %s failed: %v", key, r.err)
			return "", LoadEmpty
		}
		if !r.ok {
			return "", LoadEmpty
		}
		return r.value, LoadOK
	case <-rctx.Done():
		return "", LoadTimedOut
	}
}
