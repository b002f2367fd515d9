package internal

import (
	"testing"
	"time"
)

func TestChatroomID(t *testing.T) {
	tests := []struct {
		venueID string
		want    string
	}{
		{"venue-42", "chat-venue-42"},
		{"v1", "chat-v1"},
		{"", "chat-"},
	}

	for _, tt := range tests {
		if got := ChatroomID(tt.venueID); got != tt.want {
			t.Errorf("ChatroomID(%q) = %q, want %q", tt.venueID, got, tt.want)
		}
	}

	// Deterministic: same venue, same room
	if ChatroomID("venue-42") != ChatroomID("venue-42") {
		t.Error("ChatroomID() is not deterministic")
	}
}

func TestNewChatroom(t *testing.T) {
	room := NewChatroom("venue-1")
	if room.ID != "chat-venue-1" {
		t.Errorf("NewChatroom() ID = %q, want %q", room.ID, "chat-venue-1")
	}
	if room.VenueID != "venue-1" {
		t.Errorf("NewChatroom() VenueID = %q, want %q", room.VenueID, "venue-1")
	}
	if len(room.ActiveSessions) != 0 || len(room.Messages) != 0 {
		t.Error("NewChatroom() should start empty")
	}
}

func TestChatroom_ReplaceSession(t *testing.T) {
	room := NewChatroom("venue-1")
	room.ReplaceSession(Session{ID: "s1", UserID: "u1", VenueID: "venue-1"})
	room.ReplaceSession(Session{ID: "s2", UserID: "u2", VenueID: "venue-1"})

	// Same user joins again: s1 superseded by s3
	room.ReplaceSession(Session{ID: "s3", UserID: "u1", VenueID: "venue-1"})

	if len(room.ActiveSessions) != 2 {
		t.Fatalf("ActiveSessions length = %d, want 2", len(room.ActiveSessions))
	}

	count := 0
	for _, s := range room.ActiveSessions {
		if s.UserID == "u1" {
			count++
			if s.ID != "s3" {
				t.Errorf("u1 session ID = %q, want %q", s.ID, "s3")
			}
		}
	}
	if count != 1 {
		t.Errorf("u1 has %d sessions, want 1", count)
	}
}

func TestChatroom_RemoveSession(t *testing.T) {
	room := NewChatroom("venue-1")
	room.ReplaceSession(Session{ID: "s1", UserID: "u1"})
	room.ReplaceSession(Session{ID: "s2", UserID: "u2"})
	room.Messages = append(room.Messages, ChatMessage{ID: "m1", Text: "hi"})

	if !room.RemoveSession("s1") {
		t.Error("RemoveSession(s1) = false, want true")
	}
	if room.RemoveSession("s1") {
		t.Error("RemoveSession(s1) second call = true, want false")
	}
	if len(room.ActiveSessions) != 1 || room.ActiveSessions[0].ID != "s2" {
		t.Errorf("ActiveSessions = %+v, want only s2", room.ActiveSessions)
	}
	if len(room.Messages) != 1 {
		t.Error("RemoveSession() must not touch messages")
	}
}

func TestChatroom_SessionFor(t *testing.T) {
	room := NewChatroom("venue-1")
	room.ReplaceSession(Session{ID: "s1", UserID: "u1"})

	if sess, ok := room.SessionFor("u1"); !ok || sess.ID != "s1" {
		t.Errorf("SessionFor(u1) = %+v, %t", sess, ok)
	}
	if _, ok := room.SessionFor("u2"); ok {
		t.Error("SessionFor(u2) = true, want false")
	}
}

func TestChatroom_LastActivity(t *testing.T) {
	room := NewChatroom("venue-1")
	if !room.LastActivity().IsZero() {
		t.Error("empty room should have zero LastActivity")
	}

	joined := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	room.ReplaceSession(Session{ID: "s1", UserID: "u1", JoinedAt: joined})
	if got := room.LastActivity(); !got.Equal(joined) {
		t.Errorf("LastActivity() = %v, want join time %v", got, joined)
	}

	sent := joined.Add(5 * time.Minute)
	room.Messages = append(room.Messages, ChatMessage{ID: "m1", SentAt: sent})
	if got := room.LastActivity(); !got.Equal(sent) {
		t.Errorf("LastActivity() = %v, want message time %v", got, sent)
	}
}

func TestChatroom_Clone(t *testing.T) {
	room := NewChatroom("venue-1")
	room.ReplaceSession(Session{ID: "s1", UserID: "u1"})
	room.Messages = append(room.Messages, ChatMessage{ID: "m1", Text: "hi"})

	clone := room.Clone()

	// Mutating the original must not leak into the clone
	room.Messages = append(room.Messages, ChatMessage{ID: "m2", Text: "again"})
	room.ActiveSessions[0].DisplayName = "changed"

	if len(clone.Messages) != 1 {
		t.Errorf("clone has %d messages, want 1", len(clone.Messages))
	}
	if clone.ActiveSessions[0].DisplayName == "changed" {
		t.Error("clone shares session backing array with original")
	}
}
