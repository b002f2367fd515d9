package internal

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/onplate/venuechat/testutil"
)

func TestStoredUserProvider_LoadProfile(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	testutil.InsertKV(t, db, ProfileKey, testutil.SampleProfileJSON)

	provider := NewStoredUserProvider(NewSQLiteKV(db))
	provider.LoadProfile(context.Background())

	user, ok := provider.CurrentUser()
	if !ok {
		t.Fatal("CurrentUser() = false after LoadProfile of seeded store")
	}
	if user.Name != "Alex" || user.Role != RoleCustomer {
		t.Errorf("CurrentUser() = %+v, want Alex/customer", user)
	}
}

func TestStoredUserProvider_LoadProfile_Corrupt(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	testutil.InsertKV(t, db, ProfileKey, "not json")

	provider := NewStoredUserProvider(NewSQLiteKV(db))
	provider.LoadProfile(context.Background())

	if _, ok := provider.CurrentUser(); ok {
		t.Error("CurrentUser() = true after corrupt profile, want false")
	}
}

func TestStoredUserProvider_Login(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	store := NewSQLiteKV(db)

	provider := NewStoredUserProvider(store)
	if _, ok := provider.CurrentUser(); ok {
		t.Fatal("fresh provider should have no user")
	}

	if err := provider.Login(RoleCustomer); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	user, ok := provider.CurrentUser()
	if !ok {
		t.Fatal("CurrentUser() = false after Login")
	}
	if user.Role != RoleCustomer {
		t.Errorf("user role = %q, want %q", user.Role, RoleCustomer)
	}
	if user.ID == "" || user.Name == "" {
		t.Errorf("Login() minted incomplete user: %+v", user)
	}

	// Profile persisted: a fresh provider over the same store sees it
	value := testutil.ReadKV(t, db, ProfileKey)
	var stored User
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		t.Fatalf("stored profile is not valid JSON: %v", err)
	}
	if stored.ID != user.ID {
		t.Errorf("stored profile ID = %q, want %q", stored.ID, user.ID)
	}

	reloaded := NewStoredUserProvider(store)
	reloaded.LoadProfile(context.Background())
	again, ok := reloaded.CurrentUser()
	if !ok || again.ID != user.ID {
		t.Error("reloaded provider should resolve the same guest identity")
	}
}

func TestStoredUserProvider_Login_StoreBroken(t *testing.T) {
	provider := NewStoredUserProvider(&failStore{})

	// Write failure is best-effort: login still succeeds in memory
	if err := provider.Login(RoleCustomer); err != nil {
		t.Fatalf("Login() error = %v, want nil despite broken store", err)
	}
	if _, ok := provider.CurrentUser(); !ok {
		t.Error("CurrentUser() = false, want in-memory identity despite broken store")
	}
}

func TestStoredUserProvider_SetAvatarURL(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()
	store := NewSQLiteKV(db)

	provider := NewStoredUserProvider(store)
	provider.SetUser(&User{ID: "u1", Name: "Alex", Role: RoleCustomer})
	provider.SetAvatarURL("https://cdn.onplate.example/alex.png")

	user, _ := provider.CurrentUser()
	if user.AvatarURL != "https://cdn.onplate.example/alex.png" {
		t.Errorf("avatar = %q, want the set URL", user.AvatarURL)
	}

	// Updated profile persisted
	value := testutil.ReadKV(t, db, ProfileKey)
	var stored User
	testutil.JSONUnmarshal(t, []byte(value), &stored)
	if stored.AvatarURL != "https://cdn.onplate.example/alex.png" {
		t.Errorf("stored avatar = %q, want the set URL", stored.AvatarURL)
	}
}

func TestStoredUserProvider_SetAvatarURL_BeforeLogin(t *testing.T) {
	provider := NewStoredUserProvider(newMemStore())

	// No user yet: the avatar is held and applied by the next login
	provider.SetAvatarURL("https://cdn.onplate.example/guest.png")
	if err := provider.Login(RoleCustomer); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	user, ok := provider.CurrentUser()
	if !ok {
		t.Fatal("CurrentUser() = false after Login")
	}
	if user.AvatarURL != "https://cdn.onplate.example/guest.png" {
		t.Errorf("avatar = %q, want the pre-login URL", user.AvatarURL)
	}
}

func TestStoredUserProvider_CurrentUser_Copies(t *testing.T) {
	provider := NewStoredUserProvider(newMemStore())
	provider.SetUser(&User{ID: "u1", Name: "Alex", Role: RoleCustomer})

	user, _ := provider.CurrentUser()
	user.Name = "Mallory"

	again, _ := provider.CurrentUser()
	if again.Name != "Alex" {
		t.Error("CurrentUser() should return a copy, not the internal pointer")
	}
}
