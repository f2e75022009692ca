package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rangira/bloodlink/pkg/bloodsdk"
)

// Requests lists blood requests. 'pending' and 'urgent' filter by status
// and urgency, a blood type like 'O-' filters by type, and 'fulfill <id>'
// marks a request fulfilled. Admin view.
func (a *App) Requests(ctx context.Context, args []string) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	if len(args) > 0 && strings.EqualFold(args[0], "fulfill") {
		return a.fulfillRequest(ctx, s, args[1:])
	}

	var requests []bloodsdk.BloodRequest
	switch {
	case len(args) == 0:
		requests, err = s.AllRequests(ctx)
	case strings.EqualFold(args[0], "pending"):
		requests, err = s.PendingRequests(ctx)
	case strings.EqualFold(args[0], "urgent"):
		requests, err = s.UrgentRequests(ctx)
	default:
		requests, err = s.RequestsByBloodType(ctx, strings.ToUpper(args[0]))
	}
	if err != nil {
		return err
	}

	a.renderRequests(requests)
	return nil
}

// MyRequests lists blood requests the caller has filed.
func (a *App) MyRequests(ctx context.Context) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	requests, err := s.MyRequests(ctx)
	if err != nil {
		return err
	}

	a.renderRequests(requests)
	return nil
}

// CreateRequest files a blood request interactively.
func (a *App) CreateRequest(ctx context.Context) error {
	s, err := a.api()
	if err != nil {
		return err
	}

	var req bloodsdk.CreateBloodRequest
	if req.BloodType, err = a.prompt("Blood type (e.g. O-)"); err != nil {
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

	if req.Urgency, err = a.prompt("Urgency (Low/Medium/High)"); err != nil {
		return err
	}
	if req.RequesterName, err = a.prompt("Requester name"); err != nil {
		return err
	}
	if req.HospitalName, err = a.prompt("Hospital"); err != nil {
		return err
	}
	if req.NeededByDate, err = a.prompt("Needed by (YYYY-MM-DD)"); err != nil {
		return err
	}
	if req.Reason, err = a.prompt("Reason (optional)"); err != nil {
		return err
	}

	created, err := s.CreateRequest(ctx, req)
	if err != nil {
		return err
	}

	a.printf("Request #%d filed.\n", created.ID)
	return nil
}

func (a *App) fulfillRequest(ctx context.Context, s *bloodsdk.Session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: requests fulfill <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a number")
	}

	req, err := s.FulfillRequest(ctx, id)
	if err != nil {
		return err
	}

	a.printf("Request #%d marked %s.\n", req.ID, req.Status)
	return nil
}

func (a *App) renderRequests(requests []bloodsdk.BloodRequest) {
	if len(requests) == 0 {
		a.println("No requests.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	tabRow(w, "ID", "TYPE", "AMOUNT", "URGENCY", "HOSPITAL", "NEEDED BY", "STATUS")
	for _, r := range requests {
		tabRow(w, r.ID, r.BloodType, fmt.Sprintf("%.0f ml", r.Amount),
			r.Urgency, r.HospitalName, r.NeededByDate, r.Status)
	}
}
