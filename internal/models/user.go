package models

import "time"

// User represents an account in the system. Identity comes from a local
// email+password pair, a Google identity, or both. The store enforces
// uniqueness on Email and GoogleID; a record must carry at least one of
// {PasswordHash, GoogleID}.
type User struct {
	ID           string    `json:"id" badgerhold:"key"`
	Name         string    `json:"name"`
	Email        string    `json:"email" badgerhold:"index"`
	PasswordHash string    `json:"-"`
	GoogleID     string    `json:"google_id,omitempty" badgerhold:"index"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsFederated returns true for accounts created via Google OAuth.
func (u *User) IsFederated() bool {
	return u.GoogleID != ""
}

// PublicUser is the user shape returned by auth endpoints.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the externally visible projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
