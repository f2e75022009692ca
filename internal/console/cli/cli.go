// Package cli implements the interactive console: a read-eval-print loop
// whose commands are gated by guard rules, mirroring the route protection a
// browser dashboard would apply client side.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rangira/bloodlink/internal/console/flow"
	"github.com/rangira/bloodlink/internal/console/guard"
	"github.com/rangira/bloodlink/internal/console/session"
	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

// defaultPageSize matches the backend's default page size for listings.
const defaultPageSize = 10

// App holds the console's wiring: the session manager is the single source
// of identity, commands reach the backend through manager.API().
type App struct {
	manager *session.Manager
	logger  *slog.Logger

	in  *bufio.Reader
	out io.Writer

	// resendDelay is how long a new code request is held off after one is
	// sent. Tests shorten it.
	resendDelay time.Duration
}

// New creates the console app. Reads come from in, user-facing output goes
// to out; logs go wherever the logger points (stderr in production).
func New(manager *session.Manager, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		manager: manager,
		logger:  logger,
		in:      bufio.NewReader(in),
		out:     out,

		resendDelay: flow.ResendDelay,
	}
}

// api returns the authenticated backend session. Guarded commands only run
// after a Grant decision, so a nil session here is a programming error
// surfaced as a plain error rather than a panic.
func (a *App) api() (*bloodsdk.Session, error) {
	s := a.manager.API()
	if s == nil {
		return nil, errors.New("not logged in")
	}
	return s, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// explain translates a guard decision into a user-facing message. Grant
// never reaches here.
func (a *App) explain(d guard.Decision) {
	switch d {
	case guard.Wait:
		a.println("Session is still loading, try again in a moment.")
	case guard.RedirectLogin:
		a.println("You need to log in first. Type 'login'.")
	case guard.RedirectUnauthorized:
		a.println("You do not have access to that view.")
	}
}
