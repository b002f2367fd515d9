package internal

import (
	"time"
)

// Session represents one user's active presence in a venue's chatroom.
// Sessions are replaced wholesale, never partially updated: the chatroom's
// active-session list is the owning container, and the manager's current
// session is a reference into it.
type Session struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venueId"`
	UserID      string    `json:"userId"`
	AccessCode  string    `json:"accessCode"`
	JoinedAt    time.Time `json:"joinedAt"`
	Active      bool      `json:"active"`
	DisplayName string    `json:"displayName"`
	IsAnonymous bool      `json:"isAnonymous"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
}

// Chatroom is the messaging space bound to one venue. Exactly one chatroom
// exists per venue id; it is created lazily on first join and never
// destroyed. Messages are append-only, in send order.
type Chatroom struct {
	ID             string        `json:"id"`
	VenueID        string        `json:"venueId"`
	Name           string        `json:"name"`
	ActiveSessions []Session     `json:"activeSessions"`
	Messages       []ChatMessage `json:"messages"`
}

// ChatMessage is one posted message. The display identity fields are
// copied from the session at send time, so a later identity change does
// not retroactively alter past messages.
type ChatMessage struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	VenueID     string    `json:"venueId"`
	Text        string    `json:"text"`
	SentAt      time.Time `json:"sentAt"`
	DisplayName string    `json:"displayName"`
	IsAnonymous bool      `json:"isAnonymous"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
}

// ChatroomID derives the chatroom id for a venue. The mapping is
// deterministic so that repeated joins land in the same room.
func ChatroomID(venueID string) string {
	return "chat-" + venueID
}

// NewChatroom creates an empty chatroom for a venue.
func NewChatroom(venueID string) *Chatroom {
	return &Chatroom{
		ID:      ChatroomID(venueID),
		VenueID: venueID,
		Name:    "Chat @ " + venueID,
	}
}

// SessionFor returns the active session belonging to userID, if any.
func (c *Chatroom) SessionFor(userID string) (*Session, bool) {
	for i := range c.ActiveSessions {
		if c.ActiveSessions[i].UserID == userID {
			return &c.ActiveSessions[i], true
		}
	}
	return nil, false
}

// ReplaceSession removes any existing session for the same user and
// appends sess, keeping at most one session per user in this room.
func (c *Chatroom) ReplaceSession(sess Session) {
	kept := c.ActiveSessions[:0]
	for _, s := range c.ActiveSessions {
		if s.UserID != sess.UserID {
			kept = append(kept, s)
		}
	}
	c.ActiveSessions = append(kept, sess)
}

// RemoveSession removes the session with the given id and reports whether
// anything was removed. Messages are untouched.
func (c *Chatroom) RemoveSession(sessionID string) bool {
	for i, s := range c.ActiveSessions {
		if s.ID == sessionID {
			c.ActiveSessions = append(c.ActiveSessions[:i], c.ActiveSessions[i+1:]...)
			return true
		}
	}
	return false
}

// LastActivity returns the timestamp of the most recent message, falling
// back to the most recent join.
func (c *Chatroom) LastActivity() time.Time {
	if n := len(c.Messages); n > 0 {
		return c.Messages[n-1].SentAt
	}
	var latest time.Time
	for _, s := range c.ActiveSessions {
		if s.JoinedAt.After(latest) {
			latest = s.JoinedAt
		}
	}
	return latest
}

// Clone returns a deep copy of the chatroom. Background snapshot writes
// work on clones so later mutations cannot race the encoder.
func (c *Chatroom) Clone() *Chatroom {
	clone := &Chatroom{
		ID:      c.ID,
		VenueID: c.VenueID,
		Name:    c.Name,
	}
	if len(c.ActiveSessions) > 0 {
		clone.ActiveSessions = make([]Session, len(c.ActiveSessions))
		copy(clone.ActiveSessions, c.ActiveSessions)
	}
	if len(c.Messages) > 0 {
		clone.Messages = make([]ChatMessage, len(c.Messages))
		copy(clone.Messages, c.Messages)
	}
	return clone
}
