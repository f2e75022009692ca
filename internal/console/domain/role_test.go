package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Role{
		"ADMIN":  RoleAdmin,
		"admin":  RoleAdmin,
		" donor": RoleDonor,
		"User":   RoleUser,
	} {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	for _, in := range []string{"", "root", "SUPERADMIN"} {
		_, err := ParseRole(in)
		require.Error(t, err, in)
	}
}

func TestSessionRoleFlags(t *testing.T) {
	t.Parallel()

	admin := &Session{Username: "alice", Role: RoleAdmin}
	require.True(t, admin.IsAdmin())
	require.False(t, admin.IsDonor())

	donor := &Session{Username: "dana", Role: RoleDonor}
	require.False(t, donor.IsAdmin())
	require.True(t, donor.IsDonor())

	var none *Session
	require.False(t, none.IsAdmin())
	require.False(t, none.IsDonor())
}
