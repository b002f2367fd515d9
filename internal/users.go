package internal

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ProfileKey is the storage key the device profile lives under.
const ProfileKey = "venuechat:profile"

// RoleCustomer is the role minted by implicit login.
const RoleCustomer = "customer"

// User is the acting identity behind a session.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UserProvider supplies the authenticated user, or mints one on demand.
// The chat manager falls back to Login(RoleCustomer) when no user is
// available.
type UserProvider interface {
	CurrentUser() (*User, bool)
	Login(role string) error
}

// StoredUserProvider keeps the device profile in the key-value store so
// the same guest identity survives restarts.
type StoredUserProvider struct {
	mu            sync.Mutex
	store         KVStore
	user          *User
	pendingAvatar string
}

// NewStoredUserProvider creates a provider backed by store. Call
// LoadProfile before first use to pick up a persisted identity.
func NewStoredUserProvider(store KVStore) *StoredUserProvider {
	return &StoredUserProvider{store: store}
}

// LoadProfile reads the persisted profile, if any. Read and parse
// failures are non-fatal: the provider just starts without a user.
func (p *StoredUserProvider) LoadProfile(ctx context.Context) {
	value, ok, err := p.store.Get(ctx, ProfileKey)
	if err != nil {
		LogWarn("profile read failed: %v", err)
		return
	}
	if !ok {
		return
	}

	var user User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		LogWarn("profile parse failed: %v", err)
		return
	}

	p.mu.Lock()
	p.user = &user
	p.mu.Unlock()
}

// CurrentUser returns the resolved user, if any.
func (p *StoredUserProvider) CurrentUser() (*User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil {
		return nil, false
	}
	user := *p.user
	return &user, true
}

// Login mints a fresh guest identity with the given role and persists it
// best-effort. An avatar set before login is applied to the new user.
func (p *StoredUserProvider) Login(role string) error {
	suffix := gonanoid.MustGenerate(accessCodeAlphabet, 4)
	user := &User{
		ID:   uuid.NewString(),
		Name: "Guest-" + suffix,
		Role: role,
	}

	p.mu.Lock()
	if p.pendingAvatar != "" {
		user.AvatarURL = p.pendingAvatar
		p.pendingAvatar = ""
	}
	p.user = user
	snapshot := *user
	p.mu.Unlock()

	LogInfo("minted guest identity %q", snapshot.Name)
	p.persistProfile(&snapshot)
	return nil
}

// SetAvatarURL records the avatar shown on non-anonymous sessions and
// persists the updated profile best-effort. When no user is resolved
// yet, the avatar is applied by the next Login.
func (p *StoredUserProvider) SetAvatarURL(url string) {
	p.mu.Lock()
	if p.user == nil {
		p.pendingAvatar = url
		p.mu.Unlock()
		return
	}
	p.user.AvatarURL = url
	user := *p.user
	p.mu.Unlock()

	p.persistProfile(&user)
}

// persistProfile writes the profile best-effort. Failures are logged;
// the in-memory identity still stands.
func (p *StoredUserProvider) persistProfile(user *User) {
	data, err := json.Marshal(user)
	if err != nil {
		LogWarn("profile encode failed: %v", err)
		return
	}
	if err := p.store.Set(context.Background(), ProfileKey, string(data)); err != nil {
		LogWarn("profile write failed: %v", err)
	}
}

// SetUser replaces the in-memory user without touching the store. Used
// when the embedding app already resolved an identity.
func (p *StoredUserProvider) SetUser(user *User) {
	p.mu.Lock()
	p.user = user
	p.mu.Unlock()
}
