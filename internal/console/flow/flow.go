// Package flow drives the two-step login sequence: credentials first, then
// the emailed one-time code. It sits between the console UI and the session
// Manager, owning the transient state that exists only while a login is in
// progress.
package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/rangira/bloodlink/internal/console/domain"
	"github.com/rangira/bloodlink/internal/console/session"
)

// State is the current step of the login sequence.
type State int

const (
	// StateCredentials is the initial step: no credentials accepted yet.
	StateCredentials State = iota
	// StateOTPPending means credentials were accepted and a one-time code
	// is in flight to the user's email.
	StateOTPPending
	// StateEstablished means verification succeeded and a session exists.
	StateEstablished
)

func (s State) String() string {
	switch s {
	case StateCredentials:
		return "credentials"
	case StateOTPPending:
		return "otp_pending"
	case StateEstablished:
		return "established"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const otpLength = 6

var (
	// ErrNotPending is returned when Verify or Resend is called outside the
	// otp_pending step.
	ErrNotPending = errors.New("no login in progress")

	// ErrBadOTPFormat is returned before any network call when the code is
	// not six digits after normalization.
	ErrBadOTPFormat = fmt.Errorf("one-time code must be %d digits", otpLength)

	// ErrTooManyAttempts is returned when verification attempts outpace the
	// local limiter. The pending login stays pending; the user can wait and
	// retry.
	ErrTooManyAttempts = errors.New("too many verification attempts, wait before retrying")
)

// Login is the state machine for one login sequence. It remembers the
// username between the credential and verification steps; the password is
// never retained. Safe for use from a single goroutine per sequence, with
// the mutex guarding against UI callbacks racing a resend.
type Login struct {
	manager *session.Manager
	logger  *slog.Logger

	mu       sync.Mutex
	state    State
	username string
	attempts *rate.Limiter
}

// NewLogin creates a login sequence in the credentials step.
func NewLogin(manager *session.Manager, logger *slog.Logger) *Login {
	return &Login{
		manager: manager,
		logger:  logger,
		state:   StateCredentials,
	}
}

// State returns the current step.
func (l *Login) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Submit sends the credentials. On success the sequence advances to
// otp_pending and the username is held for the verification step. On
// failure the sequence stays in the credentials step and the user may
// retry with different input.
func (l *Login) Submit(ctx context.Context, username, password string) error {
	if err := l.manager.Login(ctx, username, password); err != nil {
		return err
	}

	l.mu.Lock()
	l.state = StateOTPPending
	l.username = username
	// One verification per 30 seconds sustained, with a small initial
	// burst. Codes are six digits, so a tight local cap costs a legitimate
	// user nothing and blunts guessing.
	l.attempts = rate.NewLimiter(rate.Every(30*time.Second), 5)
	l.mu.Unlock()

	return nil
}

// Verify submits a one-time code. The raw input is normalized first, so
// pasted codes with spaces or hyphens work. On success the sequence is
// established and the session Manager holds the identity; on a wrong code
// the sequence stays pending for another attempt.
func (l *Login) Verify(ctx context.Context, rawCode string) (*domain.Session, error) {
	l.mu.Lock()
	if l.state != StateOTPPending {
		l.mu.Unlock()
		return nil, ErrNotPending
	}
	username := l.username
	limiter := l.attempts
	l.mu.Unlock()

	code := NormalizeOTP(rawCode)
	if len(code) != otpLength {
		return nil, ErrBadOTPFormat
	}

	if !limiter.Allow() {
		l.logger.Warn("verification attempt rate limited", "username", username)
		return nil, ErrTooManyAttempts
	}

	sess, err := l.manager.VerifyOTP(ctx, username, code)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	// A concurrent Cancel between the store write and here must win: the
	// user asked to abandon the login, so tear the session down again.
	if l.state != StateOTPPending {
		l.mu.Unlock()
		l.manager.Logout()
		return nil, ErrNotPending
	}
	l.state = StateEstablished
	l.username = ""
	l.mu.Unlock()

	return sess, nil
}

// Resend re-submits the stored username with a fresh password entry, which
// makes the backend dispatch a new code. The backend has no dedicated
// resend endpoint; re-running the credential step is the supported path.
func (l *Login) Resend(ctx context.Context, password string) error {
	l.mu.Lock()
	if l.state != StateOTPPending {
		l.mu.Unlock()
		return ErrNotPending
	}
	username := l.username
	l.mu.Unlock()

	if err := l.manager.Login(ctx, username, password); err != nil {
		return err
	}

	l.logger.Info("one-time code re-dispatched", "username", username)
	return nil
}

// Cancel abandons the sequence and returns to the credentials step. A code
// already in flight simply goes unused; verifying after Cancel fails with
// ErrNotPending and never establishes a session.
func (l *Login) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = StateCredentials
	l.username = ""
	l.attempts = nil
}

// NormalizeOTP strips everything but digits and truncates to the code
// length, so "123 456" and "123-456" both become "123456".
func NormalizeOTP(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == otpLength {
				break
			}
		}
	}
	return b.String()
}
