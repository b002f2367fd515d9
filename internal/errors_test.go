package internal

import (
	"errors"
	"strings"
	"testing"
)

func TestUnauthenticatedError(t *testing.T) {
	originalErr := errors.New("provider offline")
	err := &UnauthenticatedError{Err: originalErr}

	if !strings.Contains(err.Error(), "unauthenticated") {
		t.Errorf("UnauthenticatedError.Error() should contain 'unauthenticated', got: %q", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("UnauthenticatedError.Unwrap() should return original error")
	}

	// Also valid without a cause
	bare := &UnauthenticatedError{}
	if bare.Error() == "" {
		t.Error("UnauthenticatedError.Error() returned empty string")
	}
}

func TestNoSessionError(t *testing.T) {
	err := &NoSessionError{VenueID: "venue-9"}
	if !strings.Contains(err.Error(), "no active session") {
		t.Errorf("NoSessionError.Error() should contain 'no active session', got: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "venue-9") {
		t.Errorf("NoSessionError.Error() should contain venue id, got: %q", err.Error())
	}
}

func TestStorageError(t *testing.T) {
	originalErr := errors.New("disk full")
	err := &StorageError{Key: "venuechat:snapshot", Op: "write", Err: originalErr}

	if !strings.Contains(err.Error(), "storage error") {
		t.Errorf("StorageError.Error() should contain 'storage error', got: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "venuechat:snapshot") {
		t.Errorf("StorageError.Error() should contain the key, got: %q", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("StorageError.Unwrap() should return original error")
	}
}

func TestSnapshotError(t *testing.T) {
	originalErr := errors.New("unexpected end of JSON input")
	err := &SnapshotError{Op: "decode", Err: originalErr}

	if !strings.Contains(err.Error(), "snapshot error") {
		t.Errorf("SnapshotError.Error() should contain 'snapshot error', got: %q", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("SnapshotError.Unwrap() should return original error")
	}
}

func TestExportError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := &ExportError{Format: "jsonl", Path: "/tmp/out.jsonl", Err: originalErr}

	if !strings.Contains(err.Error(), "export error") {
		t.Errorf("ExportError.Error() should contain 'export error', got: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "jsonl") {
		t.Errorf("ExportError.Error() should contain format, got: %q", err.Error())
	}
	if !errors.Is(err, originalErr) {
		t.Error("ExportError.Unwrap() should return original error")
	}
}
