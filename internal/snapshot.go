package internal

import (
	"encoding/json"
)

// SnapshotKey is the fixed storage key the serialized snapshot lives
// under.
const SnapshotKey = "venuechat:snapshot"

// Snapshot is the persisted form of the chat state: every chatroom plus
// the current session, if any.
type Snapshot struct {
	Chatrooms      map[string]*Chatroom `json:"chatrooms"`
	CurrentSession *Session             `json:"currentSession,omitempty"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Chatrooms: make(map[string]*Chatroom)}
}

// ParseSnapshot decodes a serialized snapshot.
func ParseSnapshot(value string) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(value), &snap); err != nil {
		return nil, &SnapshotError{Op: "decode", Err: err}
	}
	if snap.Chatrooms == nil {
		snap.Chatrooms = make(map[string]*Chatroom)
	}
	return &snap, nil
}

// Encode serializes the snapshot to its stored form.
func (s *Snapshot) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", &SnapshotError{Op: "encode", Err: err}
	}
	return string(data), nil
}
