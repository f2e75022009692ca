// Package guard decides whether a view may be shown to the current
// identity. Decisions are pure functions of session state, so the console
// evaluates them before rendering and tests enumerate them as truth tables.
//
// The guard is a UX device only. Every backend endpoint re-checks the role
// server side; a bypassed guard yields a 403, not an escalation.
package guard

import (
	"fmt"
	"slices"

	"github.com/rangira/bloodlink/internal/console/domain"
)

// Decision is the outcome of evaluating a guarded view.
type Decision int

const (
	// Grant shows the view.
	Grant Decision = iota
	// Wait means session state is still loading; show nothing and decide
	// again later. Redirecting now would bounce a valid session to login.
	Wait
	// RedirectLogin sends an unauthenticated user to the login view.
	RedirectLogin
	// RedirectUnauthorized sends an authenticated user without the needed
	// role to the unauthorized view.
	RedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case Grant:
		return "grant"
	case Wait:
		return "wait"
	case RedirectLogin:
		return "redirect_login"
	case RedirectUnauthorized:
		return "redirect_unauthorized"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// Rule is the access requirement attached to a view. The zero value
// requires only an authenticated session, and admins pass regardless of
// Roles; both defaults match how most views behave.
type Rule struct {
	// Roles lists the roles that may access the view. Empty means any
	// authenticated identity.
	Roles []domain.Role

	// DisableAdminOverride keeps ADMIN out of views whose Roles do not
	// include it. Left false, admins see every view of the console.
	DisableAdminOverride bool
}

// Evaluate applies a rule to the current session state. The checks run in
// strict order: loading short-circuits everything, authentication comes
// before any role check.
func Evaluate(sess *domain.Session, loading bool, rule Rule) Decision {
	if loading {
		return Wait
	}
	if sess == nil {
		return RedirectLogin
	}
	if !rule.DisableAdminOverride && sess.IsAdmin() {
		return Grant
	}
	if len(rule.Roles) == 0 {
		return Grant
	}
	if slices.Contains(rule.Roles, sess.Role) {
		return Grant
	}
	return RedirectUnauthorized
}
