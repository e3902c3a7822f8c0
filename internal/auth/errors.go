// Package auth implements credential storage policy, federated identity
// resolution, and bearer token issuance for ClientDesk.
package auth

import "errors"

// Sentinel errors shared between the storage layer, the resolver, and the
// HTTP gateway. Handlers map these to status codes.
var (
	// ErrDuplicateEmail is returned when a create collides with an
	// existing user's email.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrDuplicateIdentity is returned when a create collides with an
	// existing federated identity (googleId).
	ErrDuplicateIdentity = errors.New("federated identity already exists")

	// ErrUserNotFound is returned when no user matches a lookup.
	ErrUserNotFound = errors.New("no user found")

	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = errors.New("incorrect password")

	// ErrResolutionFailed is returned when an OAuth profile cannot be
	// mapped to a user record. No token may be issued on this path.
	ErrResolutionFailed = errors.New("identity resolution failed")

	// ErrInvalidToken is returned when bearer token verification fails,
	// including expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
)
