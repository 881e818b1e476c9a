package ports

// TokenStore persists the single bearer token across process restarts.
// Absence of a token is a normal state, reported as an empty string, never
// as an error. The session manager is the only writer; everything else
// consumes the token read-only through TokenReader.
type TokenStore interface {
	TokenReader

	// Set overwrites the stored token. No validation is performed here.
	Set(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}

// TokenReader is the read-only view of the token store handed to consumers
// that must never mutate session state.
type TokenReader interface {
	// Get returns the currently stored token, or "" when none is stored.
	Get() (string, error)
}
