package domain

import (
	"fmt"
	"strings"
)

// Role governs which console views and operations an identity may use.
// Role gating on the client is a UI concern; the backend enforces the real
// authorization on every endpoint.
type Role string

const (
	RoleUser  Role = "USER"
	RoleDonor Role = "DONOR"
	RoleAdmin Role = "ADMIN"
)

// ParseRole validates a role string from the backend. Comparison is
// case-insensitive; the canonical form is upper case.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleDonor:
		return RoleDonor, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string { return string(r) }
