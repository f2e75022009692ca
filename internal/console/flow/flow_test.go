package flow

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rangira/bloodlink/internal/console/credstore"
	"github.com/rangira/bloodlink/internal/console/domain"
	"github.com/rangira/bloodlink/internal/console/session"
	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

type memStore struct {
	token   string
	haveTok bool
	profile []byte
}

func (s *memStore) Token() (string, bool)     { return s.token, s.haveTok }
func (s *memStore) SetToken(t string) error   { s.token, s.haveTok = t, true; return nil }
func (s *memStore) Profile() ([]byte, bool)   { return s.profile, s.profile != nil }
func (s *memStore) SetProfile(b []byte) error { s.profile = b; return nil }
func (s *memStore) Clear() error              { s.token, s.haveTok, s.profile = "", false, nil; return nil }
func (s *memStore) Close() error              { return nil }

var _ credstore.Store = (*memStore)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend accepts one username/password pair and one code, counting
// login calls so resend behavior is observable.
func fakeBackend(t *testing.T, logins *atomic.Int32) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req bloodsdk.AuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Username != "alice" || req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if logins != nil {
			logins.Add(1)
		}
		w.Write([]byte("OTP sent"))
	})
	mux.HandleFunc("POST /auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("otp") != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(bloodsdk.JWTResponse{
			Token:    "abc",
			Username: r.URL.Query().Get("username"),
			Role:     "USER",
		})
	})
	return mux
}

func newTestLogin(t *testing.T, handler http.Handler) (*Login, *session.Manager) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := bloodsdk.NewSDKClient(server.URL, testLogger())
	mgr := session.NewManager(&memStore{}, client, testLogger())
	mgr.Init()

	return NewLogin(mgr, testLogger()), mgr
}

func TestLoginHappyPath(t *testing.T) {
	t.Parallel()

	login, mgr := newTestLogin(t, fakeBackend(t, nil))
	ctx := context.Background()

	require.Equal(t, StateCredentials, login.State())

	require.NoError(t, login.Submit(ctx, "alice", "secret"))
	require.Equal(t, StateOTPPending, login.State())
	require.False(t, mgr.IsAuthenticated())

	sess, err := login.Verify(ctx, "123456")
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)
	require.Equal(t, domain.RoleUser, sess.Role)
	require.Equal(t, StateEstablished, login.State())
	require.True(t, mgr.IsAuthenticated())
}

func TestLoginBadCredentialsStaysPut(t *testing.T) {
	t.Parallel()

	login, mgr := newTestLogin(t, fakeBackend(t, nil))

	err := login.Submit(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, bloodsdk.ErrInvalidCredentials)
	require.Equal(t, StateCredentials, login.State())
	require.False(t, mgr.IsAuthenticated())
}

func TestVerifyNormalizesInput(t *testing.T) {
	t.Parallel()

	login, _ := newTestLogin(t, fakeBackend(t, nil))
	ctx := context.Background()

	require.NoError(t, login.Submit(ctx, "alice", "secret"))

	// Separators are stripped before anything is sent.
	sess, err := login.Verify(ctx, " 123-456 ")
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)
}

func TestNormalizeOTP(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"123456":    "123456",
		"123 456":   "123456",
		"123-456":   "123456",
		"12a3456":   "123456",
		"1234567":   "123456",
		"12 34":     "1234",
		"no digits": "",
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeOTP(in), "input %q", in)
	}
}

func TestVerifyRejectsShortCodeLocally(t *testing.T) {
	t.Parallel()

	var verifies atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OTP sent"))
	})
	mux.HandleFunc("POST /auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		verifies.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	login, _ := newTestLogin(t, mux)
	ctx := context.Background()

	require.NoError(t, login.Submit(ctx, "alice", "secret"))

	_, err := login.Verify(ctx, "123")
	require.ErrorIs(t, err, ErrBadOTPFormat)
	require.Zero(t, verifies.Load(), "short code must not reach the backend")
	require.Equal(t, StateOTPPending, login.State())
}

func TestVerifyWrongCodeAllowsRetry(t *testing.T) {
	t.Parallel()

	login, mgr := newTestLogin(t, fakeBackend(t, nil))
	ctx := context.Background()

	require.NoError(t, login.Submit(ctx, "alice", "secret"))

	_, err := login.Verify(ctx, "000000")
	require.ErrorIs(t, err, bloodsdk.ErrInvalidOTP)
	require.Equal(t, StateOTPPending, login.State())
	require.False(t, mgr.IsAuthenticated())

	sess, err := login.Verify(ctx, "123456")
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)
}

func TestVerifyRateLimited(t *testing.T) {
	t.Parallel()

	login, _ := newTestLogin(t, fakeBackend(t, nil))
	ctx := context.Background()

	require.NoError(t, login.Submit(ctx, "alice", "secret"))

	// Burn the burst with wrong codes, then the limiter kicks in.
	for i := 0; i < 5; i++ {
		_, err := login.Verify(ctx, "000000")
		require.ErrorIs(t, err, bloodsdk.ErrInvalidOTP)
	}

	_, err := login.Verify(ctx, "123456")
	require.ErrorIs(t, err, ErrTooManyAttempts)
	require.Equal(t, StateOTPPending, login.State())
}

func TestCancelAbandonsPendingLogin(t *testing.T) {
	t.Parallel()

	login, mgr := newTestLogin(t, fakeBackend(t, nil))
	ctx := context.Background()

	require.NoError(t, login.Submit(ctx, "alice", "secret"))
	login.Cancel()
	require.Equal(t, StateCredentials, login.State())

	// A code arriving after cancel must not establish a session.
	_, err := login.Verify(ctx, "123456")
	require.ErrorIs(t, err, ErrNotPending)
	require.False(t, mgr.IsAuthenticated())
}

func TestResendRedispatchesCode(t *testing.T) {
	t.Parallel()

	var logins atomic.Int32
	login, _ := newTestLogin(t, fakeBackend(t, &logins))
	ctx := context.Background()

	require.NoError(t, login.Submit(ctx, "alice", "secret"))
	require.Equal(t, int32(1), logins.Load())

	require.NoError(t, login.Resend(ctx, "secret"))
	require.Equal(t, int32(2), logins.Load())
	require.Equal(t, StateOTPPending, login.State())
}

func TestResendOutsidePending(t *testing.T) {
	t.Parallel()

	login, _ := newTestLogin(t, fakeBackend(t, nil))

	err := login.Resend(context.Background(), "secret")
	require.ErrorIs(t, err, ErrNotPending)
}

func TestCountdown(t *testing.T) {
	t.Parallel()

	t.Run("counts down to zero and closes", func(t *testing.T) {
		t.Parallel()

		c := NewCountdown(2 * time.Second)

		var got []int
		for v := range c.C {
			got = append(got, v)
			require.GreaterOrEqual(t, v, 0)
		}
		require.Equal(t, []int{1, 0}, got)
	})

	t.Run("non-positive duration closes immediately", func(t *testing.T) {
		t.Parallel()

		c := NewCountdown(0)
		_, open := <-c.C
		require.False(t, open)
	})

	t.Run("stop is idempotent and halts ticks", func(t *testing.T) {
		t.Parallel()

		c := NewCountdown(time.Minute)
		c.Stop()
		c.Stop()

		select {
		case _, open := <-c.C:
			require.False(t, open)
		case <-time.After(2 * time.Second):
			t.Fatal("channel did not close after Stop")
		}
	})
}
