package cli

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rangira/bloodlink/internal/console/flow"
	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

// Login drives the two-step flow interactively: credentials, then the
// emailed one-time code. The code prompt accepts 'resend' and 'cancel' as
// escape hatches; resending is held off until the countdown elapses.
func (a *App) Login(ctx context.Context) error {
	if a.manager.IsAuthenticated() {
		a.println("Already logged in. Use 'logout' to switch accounts.")
		return nil
	}

	username, err := a.prompt("Username")
	if err != nil {
		return err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}

	login := flow.NewLogin(a.manager, a.logger)
	if err := login.Submit(ctx, username, password); err != nil {
		if errors.Is(err, bloodsdk.ErrInvalidCredentials) {
			a.println("Invalid username or password.")
			return nil
		}
		return err
	}

	// The password must not be retained past the credential step; a resend
	// re-prompts for it instead.
	password = ""

	a.println("A one-time code has been sent to your email.")
	hold := startResendHold(a.resendDelay)
	defer func() { hold.Stop() }()

	for {
		code, err := a.prompt("Code ('resend' or 'cancel')")
		if err != nil {
			login.Cancel()
			return err
		}

		switch strings.ToLower(code) {
		case "cancel":
			login.Cancel()
			a.println("Login cancelled.")
			return nil

		case "resend":
			if wait := hold.Remaining(); wait > 0 {
				a.printf("You can resend in %d seconds.\n", wait)
				continue
			}
			pw, err := a.promptPassword("Password")
			if err != nil {
				login.Cancel()
				return err
			}
			if err := login.Resend(ctx, pw); err != nil {
				a.printf("Resend failed: %v\n", err)
				continue
			}
			a.println("A new code has been sent.")
			hold.Stop()
			hold = startResendHold(a.resendDelay)
			continue
		}

		sess, err := login.Verify(ctx, code)
		switch {
		case err == nil:
			a.printf("Welcome, %s (%s).\n", sess.Username, sess.Role)
			return nil
		case errors.Is(err, flow.ErrBadOTPFormat):
			a.println("The code must be six digits.")
		case errors.Is(err, bloodsdk.ErrInvalidOTP):
			a.println("That code is not valid. Try again.")
		case errors.Is(err, flow.ErrTooManyAttempts):
			a.println("Too many attempts. Wait a little before trying again.")
		default:
			login.Cancel()
			return err
		}
	}
}

// resendHold tracks the hold-off before another code may be requested. It
// owns a flow.Countdown; callers must Stop it when the login interaction
// ends so the ticker does not outlive its owner.
type resendHold struct {
	remaining atomic.Int64
	countdown *flow.Countdown
}

func startResendHold(d time.Duration) *resendHold {
	h := &resendHold{countdown: flow.NewCountdown(d)}
	h.remaining.Store(int64(d / time.Second))

	go func() {
		for v := range h.countdown.C {
			h.remaining.Store(int64(v))
		}
	}()

	return h
}

// Remaining reports the seconds left before a resend is allowed.
func (h *resendHold) Remaining() int64 { return h.remaining.Load() }

// Stop halts the countdown. Safe to call more than once.
func (h *resendHold) Stop() { h.countdown.Stop() }

// Register collects the fields for a new account. Registration never logs
// the user in; the new account goes through the normal OTP flow.
func (a *App) Register(ctx context.Context) error {
	req := bloodsdk.RegisterRequest{Role: "USER"}

	var err error
	if req.Username, err = a.prompt("Username"); err != nil {
		return err
	}
	if req.Email, err = a.prompt("Email"); err != nil {
		return err
	}
	if req.Password, err = a.promptPassword("Password"); err != nil {
		return err
	}

	if err := a.manager.Register(ctx, req); err != nil {
		a.printf("Registration failed: %v\n", err)
		return nil
	}

	a.println("Account created. Use 'login' to sign in.")
	return nil
}

// ResetPassword runs the emailed reset-code sequence.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}

	if err := a.manager.RequestPasswordReset(ctx, email); err != nil {
		a.printf("Could not request a reset code: %v\n", err)
		return nil
	}
	a.println("A reset code has been sent to your email.")

	code, err := a.prompt("Reset code")
	if err != nil {
		return err
	}
	newPassword, err := a.promptPassword("New password")
	if err != nil {
		return err
	}

	if err := a.manager.ResetPassword(ctx, bloodsdk.ResetPasswordRequest{
		Email:       email,
		OTP:         flow.NormalizeOTP(code),
		NewPassword: newPassword,
	}); err != nil {
		if errors.Is(err, bloodsdk.ErrInvalidOTP) {
			a.println("That reset code is not valid.")
			return nil
		}
		a.printf("Password reset failed: %v\n", err)
		return nil
	}

	a.println("Password updated. Use 'login' to sign in.")
	return nil
}

// Logout tears the session down. Always succeeds from the user's point of
// view.
func (a *App) Logout() {
	a.manager.Logout()
	a.println("Logged out.")
}
