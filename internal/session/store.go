// Package session owns the lifecycle of the credential token issued by the
// ledger's auth service. The token is opaque to the client: it is stored,
// attached to outgoing requests, and cleared on logout, never inspected.
package session

import "context"

// Store is the single holder of the credential token. Absence of a token is
// a valid state, not an error; Read returns an empty string when logged out.
type Store interface {
	// Save persists the token, overwriting any previous value.
	Save(ctx context.Context, token string) error

	// Read returns the stored token, or "" when none is stored.
	Read(ctx context.Context) (string, error)

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error

	// IsAuthenticated reports whether a token is currently stored.
	IsAuthenticated(ctx context.Context) bool
}
