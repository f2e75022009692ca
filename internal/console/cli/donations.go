package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

// Donations lists donations. With no argument it shows the full ledger;
// 'available' filters to available stock and a blood type like 'A+' filters
// by type. Admin view.
func (a *App) Donations(ctx context.Context, args []string) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	var donations []bloodsdk.Donation
	switch {
	case len(args) == 0:
		donations, err = s.AllDonations(ctx)
	case strings.EqualFold(args[0], "available"):
		donations, err = s.AvailableDonations(ctx)
	default:
		donations, err = s.DonationsByBloodType(ctx, strings.ToUpper(args[0]))
	}
	if err != nil {
		return err
	}

	a.renderDonations(donations)
	return nil
}

// MyDonations lists the caller's own donation history. Donor view.
func (a *App) MyDonations(ctx context.Context) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	donations, err := s.MyDonations(ctx)
	if err != nil {
		return err
	}

	a.renderDonations(donations)
	return nil
}

// Donate checks eligibility first, then records a donation interactively.
func (a *App) Donate(ctx context.Context) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	eligible, err := s.CanDonate(ctx)
	if err != nil {
		return err
	}
	if !eligible {
		a.println("You are not eligible to donate yet. The minimum interval between donations has not passed.")
		return nil
	}

	var req bloodsdk.DonateRequest
	if req.BloodType, err = a.prompt("Blood type (e.g. A+)"); err != nil {
		return err
	}
	req.BloodType = strings.ToUpper(req.BloodType)

	amountStr, err := a.prompt("Amount (ml)")
	if err != nil {
		return err
	}
	if req.Amount, err = strconv.ParseFloat(amountStr, 64); err != nil {
		return fmt.Errorf("amount must be a number")
	}

	if req.Location, err = a.prompt("Location"); err != nil {
		return err
	}
	if req.Notes, err = a.prompt("Notes (optional)"); err != nil {
		return err
	}

	donation, err := s.Donate(ctx, req)
	if err != nil {
		return err
	}

	a.printf("Donation #%d recorded. Thank you!\n", donation.ID)
	return nil
}

func (a *App) renderDonations(donations []bloodsdk.Donation) {
	if len(donations) == 0 {
		a.println("No donations.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	tabRow(w, "ID", "TYPE", "AMOUNT", "DATE", "LOCATION", "AVAILABLE", "DONOR")
	for _, d := range donations {
		donor := ""
		if d.Donor != nil {
			donor = d.Donor.Username
		}
		tabRow(w, d.ID, d.BloodType, fmt.Sprintf("%.0f ml", d.Amount),
			d.DonationDate, d.Location, yesNo(d.IsAvailable), donor)
	}
}
