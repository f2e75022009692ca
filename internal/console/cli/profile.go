package cli

import (
	"context"
	"text/tabwriter"
)

// Profile shows the current identity. The id and email come from the
// backend's profile when known; the verification response does not carry
// them, so they may be blank until an admin fetches the account.
func (a *App) Profile(ctx context.Context) error {
	sess := a.manager.Current()
	if sess == nil {
		a.println("Not logged in.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	tabRow(w, "Username", sess.Username)
	tabRow(w, "Role", sess.Role)
	if sess.ID != nil {
		tabRow(w, "ID", *sess.ID)
	}
	if sess.Email != "" {
		tabRow(w, "Email", sess.Email)
	}

	if sess.IsDonor() {
		s, err := a.api()
		if err != nil {
			return err
		}
		eligible, err := s.CanDonate(ctx)
		if err == nil {
			tabRow(w, "Eligible to donate", yesNo(eligible))
		}
	}

	return nil
}
