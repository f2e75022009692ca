package cli

import (
	"context"
	"text/tabwriter"

	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

// MyAppointments lists the caller's own appointments, one page at a time.
func (a *App) MyAppointments(ctx context.Context, args []string) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	page, err := pageArg(args)
	if err != nil {
		return err
	}

	result, err := s.MyAppointments(ctx, page, defaultPageSize)
	if err != nil {
		return err
	}

	a.renderAppointments(result)
	return nil
}

// AllAppointments lists every appointment in the system. Admin view.
func (a *App) AllAppointments(ctx context.Context, args []string) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	page, err := pageArg(args)
	if err != nil {
		return err
	}

	result, err := s.AllAppointments(ctx, page, defaultPageSize)
	if err != nil {
		return err
	}

	a.renderAppointments(result)
	return nil
}

// BookAppointment prompts for a slot and books it.
func (a *App) BookAppointment(ctx context.Context) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	var req bloodsdk.BookAppointmentRequest
	if req.AppointmentDate, err = a.prompt("Date (YYYY-MM-DD)"); err != nil {
		return err
	}
	if req.AppointmentTime, err = a.prompt("Time (HH:MM)"); err != nil {
		return err
	}
	if req.Location, err = a.prompt("Location"); err != nil {
		return err
	}
	if req.Notes, err = a.prompt("Notes (optional)"); err != nil {
		return err
	}

	appt, err := s.BookAppointment(ctx, req)
	if err != nil {
		return err
	}

	a.printf("Appointment #%d booked for %s %s at %s.\n",
		appt.ID, appt.AppointmentDate, appt.AppointmentTime, appt.Location)
	return nil
}

func (a *App) renderAppointments(page *bloodsdk.Page[bloodsdk.Appointment]) {
	if len(page.Content) == 0 {
		a.println("No appointments.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	tabRow(w, "ID", "DATE", "TIME", "LOCATION", "STATUS", "USER")
	for _, appt := range page.Content {
		username := ""
		if appt.User != nil {
			username = appt.User.Username
		}
		tabRow(w, appt.ID, appt.AppointmentDate, appt.AppointmentTime,
			appt.Location, appt.Status, username)
	}

	a.renderPageFooter(page.Number, page.TotalPages, page.TotalElements)
}

func (a *App) renderPageFooter(number, totalPages int, totalElements int64) {
	if totalPages > 1 {
		a.printf("Page %d of %d (%d total). Append a page number to see more.\n",
			number+1, totalPages, totalElements)
	}
}
