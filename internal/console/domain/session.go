package domain

// Session is the in-memory record of the currently authenticated identity.
// It is created wholesale on successful OTP verification (or restored from
// the credential store at startup) and never partially updated.
//
// The verify-otp response carries only token, username and role, so ID stays
// nil and Email empty until a follow-up profile fetch fills them in. Code
// that needs the numeric id must handle its absence rather than assume a
// placeholder.
type Session struct {
	ID       *int64
	Username string
	Email    string
	Role     Role
}

// IsAdmin reports whether the session holds the ADMIN role.
func (s *Session) IsAdmin() bool { return s != nil && s.Role == RoleAdmin }

// IsDonor reports whether the session holds the DONOR role.
func (s *Session) IsDonor() bool { return s != nil && s.Role == RoleDonor }
