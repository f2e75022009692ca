package bloodsdk

import (
	"context"
	"net/http"
	"sync"
)

// Session represents an authenticated connection to the backend. Every
// method attaches the bearer token as an Authorization header. The backend
// issues no refresh tokens; when the token goes stale calls fail with a 401
// and the caller must run the login flow again.
type Session struct {
	client *SDKClient

	mu    sync.RWMutex
	token string
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the bearer token in place, keeping the session usable
// after a re-login without rebuilding dependent components.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// ============================================================================
// Profile
// ============================================================================

// GetUser fetches a user record by id. Admins may fetch anyone; other roles
// only themselves.
func (s *Session) GetUser(ctx context.Context, id int64) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, pathID("api/users", id), nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
