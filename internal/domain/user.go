// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// GoogleAuthSentinel is stored in place of a password hash for accounts
// created through Google sign-in. It can never match a bcrypt compare, so
// such accounts cannot authenticate with a password.
const GoogleAuthSentinel = "google-auth"

// User represents a registered account. Email is the identity key and is
// compared case-insensitively everywhere.
type User struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture,omitempty"`
	GoogleID  string    `json:"googleId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginSession is the logged-in marker for one authenticated client,
// keyed by an opaque token rather than kept as ambient process state.
type LoginSession struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// IdentityClaim is the decoded payload produced by an external OAuth
// verifier. The core only checks that the required fields are present.
type IdentityClaim struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Subject string `json:"sub,omitempty"`
}

// KeyValueStore is the port for the backing store. Get reports absence via
// the bool so callers can distinguish "empty string" from "no record".
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
