package internal

import "fmt"

// UnauthenticatedError is returned when a session cannot be created
// because no user could be resolved, even after the implicit login
// attempt.
type UnauthenticatedError struct {
	Err error
}

func (e *UnauthenticatedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unauthenticated: no user available: %v", e.Err)
	}
	return "unauthenticated: no user available"
}

func (e *UnauthenticatedError) Unwrap() error {
	return e.Err
}

// NoSessionError is returned when a message is sent without a current
// session for the target venue.
type NoSessionError struct {
	VenueID string
}

func (e *NoSessionError) Error() string {
	return fmt.Sprintf("no active session for venue %q", e.VenueID)
}

// StorageError represents errors accessing the key-value store
type StorageError struct {
	Key string
	Op  string // "open", "read", "write"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// SnapshotError represents errors encoding or decoding the persisted
// snapshot
type SnapshotError struct {
	Op  string // "encode", "decode"
	Err error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot error: %s: %v", e.Op, e.Err)
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during transcript export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
