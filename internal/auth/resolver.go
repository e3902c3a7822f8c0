package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/interfaces"
	"github.com/clientdesk/clientdesk/internal/models"
)

// Resolver maps an external OAuth profile to a local user record,
// creating one on first sight. First-Google-login-wins: an existing
// record for the provider id is returned unchanged, with no field
// refresh from the newer profile.
type Resolver struct {
	users  interfaces.UserStorage
	logger *common.Logger
}

// NewResolver creates a federated identity resolver.
func NewResolver(users interfaces.UserStorage, logger *common.Logger) *Resolver {
	return &Resolver{users: users, logger: logger}
}

// Resolve returns the user owning the profile's provider id, creating a
// record if none exists. When a concurrent first login wins the create
// race, the unique-constraint failure is reconciled by re-reading the
// winner's record. Any other persistence failure surfaces as
// ErrResolutionFailed and the gateway must not issue a token.
func (r *Resolver) Resolve(ctx context.Context, profile *Profile) (*models.User, error) {
	if profile == nil || profile.ProviderID == "" {
		return nil, fmt.Errorf("%w: profile has no provider id", ErrResolutionFailed)
	}

	user, err := r.users.FindByGoogleID(ctx, profile.ProviderID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
	}

	user = &models.User{
		ID:        uuid.New().String(),
		GoogleID:  profile.ProviderID,
		Name:      profile.DisplayName,
		Email:     profile.Email,
		Avatar:    profile.AvatarURL,
		CreatedAt: time.Now().UTC(),
	}

	err = r.users.CreateFederated(ctx, user)
	if err == nil {
		if r.logger != nil {
			r.logger.Info().Str("user_id", user.ID).Msg("created user for first federated login")
		}
		return user, nil
	}

	if errors.Is(err, ErrDuplicateIdentity) {
		// Another request created this identity first; use its record.
		existing, findErr := r.users.FindByGoogleID(ctx, profile.ProviderID)
		if findErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrResolutionFailed, findErr)
		}
		return existing, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrResolutionFailed, err)
}
