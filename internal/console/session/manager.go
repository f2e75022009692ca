// Package session owns the console's authenticated identity. The Manager is
// the single writer of Session state; every other component reads through
// it. All mutation happens via the narrow Login/VerifyOTP/Logout/Register
// surface.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rangira/bloodlink/internal/console/credstore"
	"github.com/rangira/bloodlink/internal/console/domain"
	"github.com/rangira/bloodlink/pkg/bloodsdk"
	"github.com/rangira/bloodlink/pkg/jwtx"
)

// storedProfile is the serialized form cached in the credential store.
type storedProfile struct {
	ID       *int64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Manager holds the current authenticated identity and its derived flags.
// A Session exists in memory if and only if a bearer token is stored AND the
// cached profile parses; any mismatch is resolved by clearing both (fail
// closed, not fail open).
type Manager struct {
	store  credstore.Store
	client *bloodsdk.SDKClient
	logger *slog.Logger

	mu      sync.RWMutex
	loading bool
	current *domain.Session
	api     *bloodsdk.Session
}

// NewManager creates a Manager in the loading state. Call Init before
// consulting session state; guards must not make redirect decisions while
// Loading reports true.
func NewManager(store credstore.Store, client *bloodsdk.SDKClient, logger *slog.Logger) *Manager {
	return &Manager{
		store:   store,
		client:  client,
		logger:  logger,
		loading: true,
	}
}

// Init restores a session from the credential store. It runs once per
// process start and always completes: every failure path degrades to "no
// session" with the store cleared.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.loading = false }()

	token, haveToken := m.store.Token()
	raw, haveProfile := m.store.Profile()

	if !haveToken && !haveProfile {
		return
	}
	if !haveToken || !haveProfile {
		m.logger.Warn("partial credentials in store, clearing")
		m.clearStore()
		return
	}

	var profile storedProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		m.logger.Warn("cached profile corrupt, clearing credentials", "err", err)
		m.clearStore()
		return
	}

	role, err := domain.ParseRole(profile.Role)
	if err != nil || profile.Username == "" {
		m.logger.Warn("cached profile invalid, clearing credentials")
		m.clearStore()
		return
	}

	if jwtx.Expired(token, time.Now()) {
		m.logger.Info("stored token expired, clearing credentials", "username", profile.Username)
		m.clearStore()
		return
	}

	m.current = &domain.Session{
		ID:       profile.ID,
		Username: profile.Username,
		Email:    profile.Email,
		Role:     role,
	}
	m.api = m.client.NewSession(token)
	m.logger.Info("session restored", "username", profile.Username, "role", role)
}

// Loading reports whether initialization has not yet completed.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Current returns the active session, or nil when unauthenticated. The
// returned value is replaced wholesale on every change; callers must not
// mutate it.
func (m *Manager) Current() *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool { return m.Current() != nil }

// IsAdmin reports whether the active session holds the ADMIN role.
func (m *Manager) IsAdmin() bool { return m.Current().IsAdmin() }

// IsDonor reports whether the active session holds the DONOR role.
func (m *Manager) IsDonor() bool { return m.Current().IsDonor() }

// API returns the authenticated backend session, or nil when logged out.
func (m *Manager) API() *bloodsdk.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.api
}

// Login submits credentials. Success means the backend dispatched a one-time
// code out of band; no Session is created and no state is mutated, on
// success or failure.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	if err := m.client.Login(ctx, username, password); err != nil {
		return err
	}

	m.logger.Info("credentials accepted, otp dispatched", "username", username)
	return nil
}

// VerifyOTP submits the one-time code. On success the bearer token and a
// serialized profile are persisted and the in-memory Session is replaced
// wholesale. On failure nothing changes and the caller may retry.
//
// The verification response carries no id or email; those stay absent on
// the Session rather than being invented (the backend contract gap is
// documented, not papered over).
func (m *Manager) VerifyOTP(ctx context.Context, username, code string) (*domain.Session, error) {
	jwtResp, err := m.client.VerifyOTP(ctx, username, code)
	if err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(jwtResp.Role)
	if err != nil {
		return nil, fmt.Errorf("backend returned unusable role: %w", err)
	}

	sess := &domain.Session{
		Username: jwtResp.Username,
		Email:    "",
		Role:     role,
	}

	if err := m.persist(jwtResp.Token, sess); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.current = sess
	m.api = m.client.NewSession(jwtResp.Token)
	m.mu.Unlock()

	m.logger.Info("session established", "username", sess.Username, "role", sess.Role)
	return sess, nil
}

// Logout clears the credential store and the in-memory session. It is
// idempotent; logging out with no active session is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearStore()
	m.current = nil
	m.api = nil
	m.logger.Info("logged out")
}

// Register delegates account creation to the backend. It never touches
// session state: the new account still requires the OTP-gated login flow.
func (m *Manager) Register(ctx context.Context, req bloodsdk.RegisterRequest) error {
	return m.client.Register(ctx, req)
}

// RequestPasswordReset asks the backend to email a reset code. No session
// side effects.
func (m *Manager) RequestPasswordReset(ctx context.Context, email string) error {
	return m.client.RequestPasswordReset(ctx, email)
}

// ResetPassword completes an emailed reset. The user still logs in with the
// new password afterwards; an active session, if any, is left alone.
func (m *Manager) ResetPassword(ctx context.Context, req bloodsdk.ResetPasswordRequest) error {
	return m.client.ResetPassword(ctx, req)
}

// persist writes the token and profile. If either write fails the store is
// cleared so a half-written credential pair can never be restored later.
func (m *Manager) persist(token string, sess *domain.Session) error {
	raw, err := json.Marshal(storedProfile{
		ID:       sess.ID,
		Username: sess.Username,
		Email:    sess.Email,
		Role:     sess.Role.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}

	if err := m.store.SetToken(token); err != nil {
		m.clearStore()
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := m.store.SetProfile(raw); err != nil {
		m.clearStore()
		return fmt.Errorf("failed to persist profile: %w", err)
	}

	return nil
}

func (m *Manager) clearStore() {
	if err := m.store.Clear(); err != nil {
		m.logger.Error("failed to clear credential store", "err", err)
	}
}
