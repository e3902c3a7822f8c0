package badger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/timshannon/badgerhold/v4"

	"github.com/clientdesk/clientdesk/internal/auth"
	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/models"
)

// UserStorage implements interfaces.UserStorage using BadgerDB.
//
// Creates take a mutex so the uniqueness check and the insert act as one
// atomic step against the embedded store: of two racing writers for the
// same email or googleId, the second always fails with
// auth.ErrDuplicateEmail / auth.ErrDuplicateIdentity.
type UserStorage struct {
	db     *BadgerDB
	logger *common.Logger
	mu     sync.Mutex
}

// NewUserStorage creates a new user storage backed by BadgerDB.
func NewUserStorage(db *BadgerDB, logger *common.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// FindByEmail retrieves a user by email. Matching is case-sensitive.
func (s *UserStorage) FindByEmail(_ context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.Store().FindOne(&user, badgerhold.Where("Email").Eq(email).Index("Email"))
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// FindByID retrieves a user by primary key.
func (s *UserStorage) FindByID(_ context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.Store().Get(id, &user)
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

// FindByGoogleID retrieves a user by federated identity id.
func (s *UserStorage) FindByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	var user models.User
	err := s.db.Store().FindOne(&user, badgerhold.Where("GoogleID").Eq(googleID).Index("GoogleID"))
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by google id: %w", err)
	}
	return &user, nil
}

// CreateLocal persists a password-based user. Fails with
// auth.ErrDuplicateEmail if the email is already present.
func (s *UserStorage) CreateLocal(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.FindByEmail(ctx, user.Email); err == nil {
		return auth.ErrDuplicateEmail
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	if err := s.db.Store().Insert(user.ID, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateFederated persists a Google-only user. Fails with
// auth.ErrDuplicateIdentity when the googleId is already present, or
// auth.ErrDuplicateEmail when a non-empty email collides with an
// existing account.
func (s *UserStorage) CreateFederated(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.FindByGoogleID(ctx, user.GoogleID); err == nil {
		return auth.ErrDuplicateIdentity
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	// Google profiles may omit email; empty emails are exempt from the
	// uniqueness constraint.
	if user.Email != "" {
		if _, err := s.FindByEmail(ctx, user.Email); err == nil {
			return auth.ErrDuplicateEmail
		} else if !errors.Is(err, auth.ErrUserNotFound) {
			return err
		}
	}

	if err := s.db.Store().Insert(user.ID, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
