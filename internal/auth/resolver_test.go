package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/clientdesk/clientdesk/internal/models"
)

// fakeUserStore is an in-memory UserStorage for resolver tests.
type fakeUserStore struct {
	byGoogleID map[string]*models.User
	createErr  error
	createHook func()
	creates    int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byGoogleID: make(map[string]*models.User)}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byGoogleID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.byGoogleID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserStore) FindByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	if u, ok := f.byGoogleID[googleID]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserStore) CreateLocal(_ context.Context, user *models.User) error {
	return errors.New("not used")
}

func (f *fakeUserStore) CreateFederated(_ context.Context, user *models.User) error {
	f.creates++
	if f.createHook != nil {
		f.createHook()
	}
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byGoogleID[user.GoogleID]; ok {
		return ErrDuplicateIdentity
	}
	f.byGoogleID[user.GoogleID] = user
	return nil
}

func TestResolveCreatesOnFirstLogin(t *testing.T) {
	store := newFakeUserStore()
	resolver := NewResolver(store, nil)

	profile := &Profile{
		ProviderID:  "g-123",
		DisplayName: "Alice",
		Email:       "alice@example.com",
		AvatarURL:   "https://example.com/a.png",
	}

	user, err := resolver.Resolve(context.Background(), profile)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if user.GoogleID != "g-123" {
		t.Errorf("GoogleID = %q, want %q", user.GoogleID, "g-123")
	}
	if user.Name != "Alice" || user.Email != "alice@example.com" {
		t.Errorf("profile fields not copied: %+v", user)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
	if user.PasswordHash != "" {
		t.Error("federated user must have no password hash")
	}
}

func TestResolveReturnsExistingUnchanged(t *testing.T) {
	store := newFakeUserStore()
	store.byGoogleID["g-123"] = &models.User{
		ID:       "user-1",
		GoogleID: "g-123",
		Name:     "Old Name",
		Email:    "old@example.com",
	}
	resolver := NewResolver(store, nil)

	// The newer profile carries different fields; none of them are applied.
	user, err := resolver.Resolve(context.Background(), &Profile{
		ProviderID:  "g-123",
		DisplayName: "New Name",
		Email:       "new@example.com",
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if user.ID != "user-1" {
		t.Errorf("ID = %q, want %q", user.ID, "user-1")
	}
	if user.Name != "Old Name" || user.Email != "old@example.com" {
		t.Errorf("existing record was refreshed: %+v", user)
	}
	if store.creates != 0 {
		t.Errorf("expected no create, got %d", store.creates)
	}
}

func TestResolveIdempotent(t *testing.T) {
	store := newFakeUserStore()
	resolver := NewResolver(store, nil)
	profile := &Profile{ProviderID: "g-123", Email: "alice@example.com"}

	first, err := resolver.Resolve(context.Background(), profile)
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := resolver.Resolve(context.Background(), profile)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected same user, got %q and %q", first.ID, second.ID)
	}
	if store.creates != 1 {
		t.Errorf("expected one create, got %d", store.creates)
	}
}

func TestResolveReconcilesCreateRace(t *testing.T) {
	store := newFakeUserStore()
	// A concurrent first login inserts the identity between the lookup
	// and the create.
	store.createHook = func() {
		if _, ok := store.byGoogleID["g-123"]; !ok {
			store.byGoogleID["g-123"] = &models.User{ID: "winner", GoogleID: "g-123"}
		}
	}
	resolver := NewResolver(store, nil)

	user, err := resolver.Resolve(context.Background(), &Profile{ProviderID: "g-123"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if user.ID != "winner" {
		t.Errorf("expected the racing winner's record, got %q", user.ID)
	}
}

func TestResolveStorageFailure(t *testing.T) {
	store := newFakeUserStore()
	store.createErr = errors.New("disk on fire")
	resolver := NewResolver(store, nil)

	_, err := resolver.Resolve(context.Background(), &Profile{ProviderID: "g-123"})
	if !errors.Is(err, ErrResolutionFailed) {
		t.Fatalf("expected ErrResolutionFailed, got %v", err)
	}
}

func TestResolveEmptyProfile(t *testing.T) {
	resolver := NewResolver(newFakeUserStore(), nil)

	if _, err := resolver.Resolve(context.Background(), nil); !errors.Is(err, ErrResolutionFailed) {
		t.Fatalf("expected ErrResolutionFailed for nil profile, got %v", err)
	}
	if _, err := resolver.Resolve(context.Background(), &Profile{}); !errors.Is(err, ErrResolutionFailed) {
		t.Fatalf("expected ErrResolutionFailed for empty provider id, got %v", err)
	}
}
