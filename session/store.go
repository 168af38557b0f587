// Package session maps opaque tokens carried in a signed cookie to
// authenticated usernames, stored server-side.
package session

import "context"

// Store defines how sessions are stored and retrieved. A session is
// authenticated only if Resolve reports ok.
type Store interface {
	// Create allocates a session for username and returns its token.
	Create(ctx context.Context, username string) (string, error)
	// Resolve looks up the username for a token. ok is false for unknown
	// or expired tokens.
	Resolve(ctx context.Context, token string) (username string, ok bool, err error)
	// Destroy removes the session. Destroying an unknown token is not an
	// error.
	Destroy(ctx context.Context, token string) error
}
