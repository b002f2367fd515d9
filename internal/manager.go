package internal

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultStartupDelay is waited before the initial snapshot read so
	// the embedding app's startup work gets the first slice of I/O.
	DefaultStartupDelay = 100 * time.Millisecond

	// DefaultLoadTimeout bounds the initial snapshot read. Past it the
	// manager proceeds with empty state instead of blocking.
	DefaultLoadTimeout = 3 * time.Second
)

// ChatManager owns chatroom and session lifecycle for one device. All
// state is in memory; every mutation schedules a best-effort snapshot
// write to the key-value store. Construct one per store via
// NewChatManager; there are no package-level instances.
type ChatManager struct {
	mu        sync.Mutex
	chatrooms map[string]*Chatroom
	current   *Session

	store KVStore
	users UserProvider

	persistWG    sync.WaitGroup
	startupDelay time.Duration
	loadTimeout  time.Duration
}

// NewChatManager creates a manager over the given store and user
// provider with default load timings.
func NewChatManager(store KVStore, users UserProvider) *ChatManager {
	return &ChatManager{
		chatrooms:    make(map[string]*Chatroom),
		store:        store,
		users:        users,
		startupDelay: DefaultStartupDelay,
		loadTimeout:  DefaultLoadTimeout,
	}
}

// SetLoadTimings overrides the startup delay and load timeout. Mainly
// for tests.
func (m *ChatManager) SetLoadTimings(delay, timeout time.Duration) {
	m.startupDelay = delay
	m.loadTimeout = timeout
}

// Load reads the persisted snapshot into memory. Any failure (absent
// key, unreadable store, corrupt snapshot, timeout) degrades to empty
// state; Load never fails the caller.
func (m *ChatManager) Load(ctx context.Context) LoadOutcome {
	select {
	case <-time.After(m.startupDelay):
	case <-ctx.Done():
		return LoadEmpty
	}

	value, outcome := ReadWithTimeout(ctx, m.store, SnapshotKey, m.loadTimeout)
	if outcome != LoadOK {
		if outcome == LoadTimedOut {
			LogWarn("snapshot load timed out after %s, starting empty", m.loadTimeout)
		}
		return outcome
	}

	snap, err := ParseSnapshot(value)
	if err != nil {
		LogWarn("snapshot unusable, starting empty: %v", err)
		return LoadEmpty
	}

	m.mu.Lock()
	m.chatrooms = snap.Chatrooms
	m.current = snap.CurrentSession
	m.mu.Unlock()

	LogDebug("snapshot loaded: %d chatrooms", len(snap.Chatrooms))
	return LoadOK
}

// CreateSession creates a session for the venue and makes it current,
// returning the freshly generated access code to display to the user.
// Any prior session for the same user in that venue's room is
// superseded. If no user is authenticated, a customer identity is minted
// via the provider first; only when that also fails does the call return
// an UnauthenticatedError.
func (m *ChatManager) CreateSession(ctx context.Context, venueID string, isAnonymous bool, customNickname string) (string, error) {
	user, ok := m.users.CurrentUser()
	if !ok {
		LogDebug("no user for venue %s, attempting implicit customer login", venueID)
		if err := m.users.Login(RoleCustomer); err != nil {
			return "", &UnauthenticatedError{Err: err}
		}
		if user, ok = m.users.CurrentUser(); !ok {
			return "", &UnauthenticatedError{}
		}
	}

	accessCode := GenerateAccessCode()

	displayName := user.Name
	if isAnonymous {
		if customNickname != "" {
			displayName = customNickname
		} else {
			displayName = GenerateAnonymousName()
		}
	}

	sess := Session{
		ID:          uuid.NewString(),
		VenueID:     venueID,
		UserID:      user.ID,
		AccessCode:  accessCode,
		JoinedAt:    time.Now(),
		Active:      true,
		DisplayName: displayName,
		IsAnonymous: isAnonymous,
	}
	if !isAnonymous {
		sess.AvatarURL = user.AvatarURL
	}

	m.mu.Lock()
	room, exists := m.chatrooms[ChatroomID(venueID)]
	if !exists {
		room = NewChatroom(venueID)
		m.chatrooms[room.ID] = room
	}
	room.ReplaceSession(sess)
	m.current = &sess
	m.schedulePersistLocked()
	m.mu.Unlock()

	LogDebug("session %s created in %s as %q", sess.ID, room.ID, displayName)
	return accessCode, nil
}

// JoinChatroom returns the existing chatroom for the venue, or nil if
// none was ever created. Pure lookup; no session is created.
func (m *ChatManager) JoinChatroom(venueID string) *Chatroom {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.chatrooms[ChatroomID(venueID)]
	if !ok {
		return nil
	}
	return room.Clone()
}

// SendMessage appends one message to the venue's chatroom, stamped with
// the current session's identity at send time. Fails with NoSessionError
// unless the current session exists and belongs to venueID.
func (m *ChatManager) SendMessage(ctx context.Context, venueID, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.current
	if cur == nil || !cur.Active || cur.VenueID != venueID {
		return &NoSessionError{VenueID: venueID}
	}

	room, ok := m.chatrooms[ChatroomID(venueID)]
	if !ok {
		// A current session without its room means the snapshot was
		// tampered with; treat it the same as having no session.
		return &NoSessionError{VenueID: venueID}
	}

	room.Messages = append(room.Messages, ChatMessage{
		ID:          uuid.NewString(),
		SessionID:   cur.ID,
		VenueID:     venueID,
		Text:        text,
		SentAt:      time.Now(),
		DisplayName: cur.DisplayName,
		IsAnonymous: cur.IsAnonymous,
		AvatarURL:   cur.AvatarURL,
	})
	m.schedulePersistLocked()
	return nil
}

// LeaveRoom removes the current session from its chatroom and clears the
// current reference. The room and its message history stay. No-op when
// there is no current session.
func (m *ChatManager) LeaveRoom(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return
	}
	if room, ok := m.chatrooms[ChatroomID(m.current.VenueID)]; ok {
		room.RemoveSession(m.current.ID)
	}
	m.current = nil
	m.schedulePersistLocked()
}

// HasActiveSession reports whether the current session exists, is
// active, and belongs to venueID.
func (m *ChatManager) HasActiveSession(venueID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil && m.current.Active && m.current.VenueID == venueID
}

// CurrentSession returns a copy of the current session, if any.
func (m *ChatManager) CurrentSession() (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil, false
	}
	sess := *m.current
	return &sess, true
}

// CurrentChatroom returns the chatroom owning the current session, or
// nil if there is none.
func (m *ChatManager) CurrentChatroom() *Chatroom {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	room, ok := m.chatrooms[ChatroomID(m.current.VenueID)]
	if !ok {
		return nil
	}
	return room.Clone()
}

// Chatrooms returns all chatrooms sorted by id.
func (m *ChatManager) Chatrooms() []*Chatroom {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms := make([]*Chatroom, 0, len(m.chatrooms))
	for _, room := range m.chatrooms {
		rooms = append(rooms, room.Clone())
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

// Stats returns room, active-session, and message totals.
func (m *ChatManager) Stats() (rooms, sessions, messages int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rooms = len(m.chatrooms)
	for _, room := range m.chatrooms {
		sessions += len(room.ActiveSessions)
		messages += len(room.Messages)
	}
	return rooms, sessions, messages
}

// Flush waits for in-flight background writes and then writes the
// current snapshot synchronously. The CLI calls this before exit; tests
// use it to assert durability without sleeping.
func (m *ChatManager) Flush(ctx context.Context) error {
	m.persistWG.Wait()

	m.mu.Lock()
	snap := m.snapshotLocked()
	m.mu.Unlock()

	return m.writeSnapshot(ctx, snap)
}

// snapshotLocked builds a deep-copied snapshot. Caller must hold m.mu.
func (m *ChatManager) snapshotLocked() *Snapshot {
	snap := NewSnapshot()
	for id, room := range m.chatrooms {
		snap.Chatrooms[id] = room.Clone()
	}
	if m.current != nil {
		sess := *m.current
		snap.CurrentSession = &sess
	}
	return snap
}

// schedulePersistLocked writes the snapshot in the background. Failures
// are logged, never surfaced: in-memory state is the source of truth and
// the persisted copy may lag it arbitrarily. Caller must hold m.mu.
func (m *ChatManager) schedulePersistLocked() {
	snap := m.snapshotLocked()
	m.persistWG.Add(1)
	go func() {
		defer m.persistWG.Done()
		if err := m.writeSnapshot(context.Background(), snap); err != nil {
			LogWarn("background snapshot write failed: %v", err)
		}
	}()
}

func (m *ChatManager) writeSnapshot(ctx context.Context, snap *Snapshot) error {
	value, err := snap.Encode()
	if err != nil {
		return err
	}
	return m.store.Set(ctx, SnapshotKey, value)
}
