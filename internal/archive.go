package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ArchiveManager writes chatroom transcripts to a local archive
// directory: one JSON file per room plus a YAML index with metadata.
type ArchiveManager struct {
	archiveDir string
}

// ArchiveMetadata stores metadata about the archive
type ArchiveMetadata struct {
	ArchiveVersion string    `json:"archive_version" yaml:"archive_version"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"updated_at"`
}

// RoomIndexEntry represents one chatroom entry in the index
type RoomIndexEntry struct {
	ID          string    `yaml:"id"`
	VenueID     string    `yaml:"venue_id"`
	Name        string    `yaml:"name,omitempty"`
	Sessions    int       `yaml:"sessions"`
	Messages    int       `yaml:"messages"`
	ContentHash string    `yaml:"content_hash"`
	ArchivedAt  time.Time `yaml:"archived_at"`
}

// RoomIndex represents the YAML index of all archived rooms
type RoomIndex struct {
	Rooms    []RoomIndexEntry `yaml:"rooms"`
	Metadata ArchiveMetadata  `yaml:"metadata"`
}

// NewArchiveManager creates a new archive manager
func NewArchiveManager(archiveDir string) *ArchiveManager {
	return &ArchiveManager{archiveDir: archiveDir}
}

// EnsureArchiveDir ensures the archive directory exists
func (am *ArchiveManager) EnsureArchiveDir() error {
	return os.MkdirAll(am.archiveDir, 0755)
}

// GetIndexPath returns the path to the room index YAML file
func (am *ArchiveManager) GetIndexPath() string {
	return filepath.Join(am.archiveDir, "rooms.yaml")
}

// GetRoomPath returns the path to a room's archive file
func (am *ArchiveManager) GetRoomPath(roomID string) string {
	return filepath.Join(am.archiveDir, fmt.Sprintf("room_%s.json", roomID))
}

// LoadIndex loads the room index
func (am *ArchiveManager) LoadIndex() (*RoomIndex, error) {
	data, err := os.ReadFile(am.GetIndexPath())
	if err != nil {
		return nil, err
	}

	var index RoomIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}

	return &index, nil
}

// SaveIndex saves the room index
func (am *ArchiveManager) SaveIndex(index *RoomIndex) error {
	if err := am.EnsureArchiveDir(); err != nil {
		return err
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	return os.WriteFile(am.GetIndexPath(), data, 0644)
}

// SaveRoom saves a single chatroom to its archive file
func (am *ArchiveManager) SaveRoom(room *Chatroom) error {
	if err := am.EnsureArchiveDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(room, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	return os.WriteFile(am.GetRoomPath(room.ID), data, 0644)
}

// LoadRoom loads a single chatroom from its archive file
func (am *ArchiveManager) LoadRoom(roomID string) (*Chatroom, error) {
	data, err := os.ReadFile(am.GetRoomPath(roomID))
	if err != nil {
		return nil, err
	}

	var room Chatroom
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// ArchiveRooms archives all given rooms, skipping rooms whose content
// hash is unchanged since the last run. Returns how many rooms were
// written and how many were skipped.
func (am *ArchiveManager) ArchiveRooms(rooms []*Chatroom) (archived, skipped int, err error) {
	if err := am.EnsureArchiveDir(); err != nil {
		return 0, 0, err
	}

	now := time.Now()
	index, loadErr := am.LoadIndex()
	if loadErr != nil || index == nil {
		index = &RoomIndex{
			Rooms: make([]RoomIndexEntry, 0, len(rooms)),
			Metadata: ArchiveMetadata{
				ArchiveVersion: "1.0",
				CreatedAt:      now,
			},
		}
	}
	index.Metadata.UpdatedAt = now

	previous := make(map[string]string, len(index.Rooms))
	for _, entry := range index.Rooms {
		previous[entry.ID] = entry.ContentHash
	}

	for _, room := range rooms {
		hash := hashRoomContent(room)
		if previous[room.ID] == hash {
			skipped++
			continue
		}

		if err := am.SaveRoom(room); err != nil {
			LogError("failed to archive room %s: %v", room.ID, err)
			continue
		}
		archived++

		entry := RoomIndexEntry{
			ID:          room.ID,
			VenueID:     room.VenueID,
			Name:        room.Name,
			Sessions:    len(room.ActiveSessions),
			Messages:    len(room.Messages),
			ContentHash: hash,
			ArchivedAt:  now,
		}
		updated := false
		for i := range index.Rooms {
			if index.Rooms[i].ID == room.ID {
				index.Rooms[i] = entry
				updated = true
				break
			}
		}
		if !updated {
			index.Rooms = append(index.Rooms, entry)
		}
	}

	return archived, skipped, am.SaveIndex(index)
}

// hashRoomContent creates a content-based hash for a chatroom
func hashRoomContent(room *Chatroom) string {
	h := sha256.New()

	for _, msg := range room.Messages {
		h.Write([]byte(msg.DisplayName))
		h.Write([]byte(msg.Text))
		h.Write([]byte(msg.SentAt.UTC().Format(time.RFC3339Nano)))
	}
	for _, sess := range room.ActiveSessions {
		h.Write([]byte(sess.ID))
	}

	return hex.EncodeToString(h.Sum(nil))
}
