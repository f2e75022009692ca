package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

// Dashboard shows the admin summary counters.
func (a *App) Dashboard(ctx context.Context) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	summary, err := s.AdminSummary(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	tabRow(w, "Total users", summary.TotalUsers)
	tabRow(w, "Total appointments", summary.TotalAppointments)
	tabRow(w, "  pending", summary.PendingAppointments)
	tabRow(w, "  confirmed", summary.ConfirmedAppointments)
	tabRow(w, "  completed", summary.CompletedAppointments)
	tabRow(w, "  cancelled", summary.CancelledAppointments)
	return nil
}

// Donors manages the donor roster: plain listing, 'add' for interactive
// creation, 'remove <id>' for deletion. Admin view.
func (a *App) Donors(ctx context.Context, args []string) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		switch args[0] {
		case "add":
			return a.addDonor(ctx, s)
		case "remove":
			if len(args) < 2 {
				return fmt.Errorf("usage: donors remove <id>")
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be a number")
			}
			if err := s.DeleteDonor(ctx, id); err != nil {
				return err
			}
			a.printf("Donor #%d removed.\n", id)
			return nil
		default:
			return fmt.Errorf("usage: donors [add|remove <id>]")
		}
	}

	donors, err := s.ListDonors(ctx)
	if err != nil {
		return err
	}
	a.renderUsers(donors)
	return nil
}

func (a *App) addDonor(ctx context.Context, s *bloodsdk.Session) error {
	req := bloodsdk.AddDonorRequest{Role: "DONOR"}

	var err error
	if req.Username, err = a.prompt("Username"); err != nil {
		return err
	}
	if req.Email, err = a.prompt("Email"); err != nil {
		return err
	}
	age, err := a.promptInt("Age")
	if err != nil {
		return err
	}
	req.Age = int(age)
	if req.Contact, err = a.prompt("Contact"); err != nil {
		return err
	}
	if req.BloodType, err = a.prompt("Blood type"); err != nil {
		return err
	}
	if req.Password, err = a.promptPassword("Initial password"); err != nil {
		return err
	}

	donor, err := s.AddDonor(ctx, req)
	if err != nil {
		return err
	}

	a.printf("Donor #%d (%s) added.\n", donor.ID, donor.Username)
	return nil
}

// Users lists accounts, or searches when given a query. 'remove <id>'
// deletes an account. Admin view.
func (a *App) Users(ctx context.Context, args []string) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "remove" {
		if len(args) < 2 {
			return fmt.Errorf("usage: users remove <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number")
		}
		if err := s.DeleteUser(ctx, id); err != nil {
			return err
		}
		a.printf("User #%d removed.\n", id)
		return nil
	}

	if len(args) > 0 {
		page, err := s.SearchUsers(ctx, args[0], 0, defaultPageSize)
		if err != nil {
			return err
		}
		a.renderUsers(page.Content)
		a.renderPageFooter(page.Number, page.TotalPages, page.TotalElements)
		return nil
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}
	a.renderUsers(users)
	return nil
}

func (a *App) renderUsers(users []bloodsdk.User) {
	if len(users) == 0 {
		a.println("No matching accounts.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	tabRow(w, "ID", "USERNAME", "EMAIL", "ROLE", "BLOOD", "CONTACT")
	for _, u := range users {
		tabRow(w, u.ID, u.Username, u.Email, u.Role, u.BloodType, u.Contact)
	}
}
