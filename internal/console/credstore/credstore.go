// Package credstore persists the console's credentials across restarts:
// exactly one bearer token and one serialized profile blob. It is pure
// key/value persistence with no opinion on session semantics; the session
// manager owns interpretation of the stored values.
package credstore

// Store is the durable credential holder. Implementations must make Clear
// atomic from the caller's perspective: no observer may see a state where
// the token exists without the profile or vice versa after a Clear.
type Store interface {
	// Token returns the stored bearer token, or false if none is set.
	Token() (string, bool)

	// SetToken overwrites the stored token unconditionally. The token is
	// opaque; no shape validation is performed.
	SetToken(token string) error

	// Profile returns the cached profile blob, or false if none is set.
	Profile() ([]byte, bool)

	// SetProfile overwrites the cached profile blob.
	SetProfile(profile []byte) error

	// Clear removes both the token and the profile.
	Clear() error

	// Close releases any underlying resources.
	Close() error
}
