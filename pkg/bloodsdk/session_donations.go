package bloodsdk

import (
	"context"
	"net/http"
)

// AllDonations lists every recorded donation. Admin only.
func (s *Session) AllDonations(ctx context.Context) ([]Donation, error) {
	return s.listDonations(ctx, "api/donations")
}

// AvailableDonations lists donations still marked available for use.
func (s *Session) AvailableDonations(ctx context.Context) ([]Donation, error) {
	return s.listDonations(ctx, "api/donations/available")
}

// DonationsByBloodType lists available donations for a blood type.
func (s *Session) DonationsByBloodType(ctx context.Context, bloodType string) ([]Donation, error) {
	return s.listDonations(ctx, "api/donations/blood-type/"+bloodType)
}

// MyDonations lists the authenticated donor's own donations.
func (s *Session) MyDonations(ctx context.Context) ([]Donation, error) {
	return s.listDonations(ctx, "api/donations/my-donations")
}

func (s *Session) listDonations(ctx context.Context, path string) ([]Donation, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var donations []Donation
	if err := decodeJSON(resp, &donations); err != nil {
		return nil, err
	}

	return donations, nil
}

// Donate records a new blood donation for the authenticated donor.
func (s *Session) Donate(ctx context.Context, req DonateRequest) (*Donation, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "api/donations/donate", req)
	if err != nil {
		return nil, err
	}

	var donation Donation
	if err := decodeJSON(resp, &donation); err != nil {
		return nil, err
	}

	return &donation, nil
}

// UpdateDonation updates a donation record. Admin only.
func (s *Session) UpdateDonation(ctx context.Context, id int64, donation Donation) (*Donation, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, pathID("api/donations", id), donation)
	if err != nil {
		return nil, err
	}

	var updated Donation
	if err := decodeJSON(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteDonation removes a donation record. Admin only.
func (s *Session) DeleteDonation(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, pathID("api/donations", id), nil)
	if err != nil {
		return err
	}

	return discard(resp)
}

// CanDonate reports whether the authenticated donor is currently eligible
// to donate (the backend enforces the minimum interval between donations).
func (s *Session) CanDonate(ctx context.Context) (bool, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "api/donations/can-donate", nil)
	if err != nil {
		return false, err
	}

	var eligible bool
	if err := decodeJSON(resp, &eligible); err != nil {
		return false, err
	}

	return eligible, nil
}
