package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rangira/bloodlink/internal/console/domain"
)

func sessionWithRole(role domain.Role) *domain.Session {
	return &domain.Session{Username: "someone", Role: role}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	adminOnly := Rule{Roles: []domain.Role{domain.RoleAdmin}}

	tests := []struct {
		name    string
		sess    *domain.Session
		loading bool
		rule    Rule
		want    Decision
	}{
		{
			name:    "loading waits even with no session",
			sess:    nil,
			loading: true,
			rule:    adminOnly,
			want:    Wait,
		},
		{
			name:    "loading waits even with a valid session",
			sess:    sessionWithRole(domain.RoleAdmin),
			loading: true,
			rule:    adminOnly,
			want:    Wait,
		},
		{
			name: "unauthenticated goes to login",
			sess: nil,
			rule: Rule{},
			want: RedirectLogin,
		},
		{
			name: "unauthenticated goes to login before any role check",
			sess: nil,
			rule: adminOnly,
			want: RedirectLogin,
		},
		{
			name: "empty rule grants any authenticated user",
			sess: sessionWithRole(domain.RoleUser),
			rule: Rule{},
			want: Grant,
		},
		{
			name: "matching role grants",
			sess: sessionWithRole(domain.RoleDonor),
			rule: Rule{Roles: []domain.Role{domain.RoleDonor}},
			want: Grant,
		},
		{
			name: "donor on an admin view is unauthorized",
			sess: sessionWithRole(domain.RoleDonor),
			rule: adminOnly,
			want: RedirectUnauthorized,
		},
		{
			name: "user on a donor view is unauthorized",
			sess: sessionWithRole(domain.RoleUser),
			rule: Rule{Roles: []domain.Role{domain.RoleDonor}},
			want: RedirectUnauthorized,
		},
		{
			name: "admin passes a non-matching role list by default",
			sess: sessionWithRole(domain.RoleAdmin),
			rule: Rule{Roles: []domain.Role{domain.RoleDonor}},
			want: Grant,
		},
		{
			name: "disabled override keeps admin out of a donor view",
			sess: sessionWithRole(domain.RoleAdmin),
			rule: Rule{Roles: []domain.Role{domain.RoleDonor}, DisableAdminOverride: true},
			want: RedirectUnauthorized,
		},
		{
			name: "multiple allowed roles",
			sess: sessionWithRole(domain.RoleUser),
			rule: Rule{Roles: []domain.Role{domain.RoleDonor, domain.RoleUser}},
			want: Grant,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Evaluate(tc.sess, tc.loading, tc.rule)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDecisionString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "grant", Grant.String())
	require.Equal(t, "wait", Wait.String())
	require.Equal(t, "redirect_login", RedirectLogin.String())
	require.Equal(t, "redirect_unauthorized", RedirectUnauthorized.String())
}
