package bloodsdk

import (
	"context"
	"net/http"
)

// ListDonors lists all registered donors.
func (s *Session) ListDonors(ctx context.Context) ([]User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "api/donors", nil)
	if err != nil {
		return nil, err
	}

	var donors []User
	if err := decodeJSON(resp, &donors); err != nil {
		return nil, err
	}

	return donors, nil
}

// GetDonor fetches a single donor by id.
func (s *Session) GetDonor(ctx context.Context, id int64) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, pathID("api/donors", id), nil)
	if err != nil {
		return nil, err
	}

	var donor User
	if err := decodeJSON(resp, &donor); err != nil {
		return nil, err
	}

	return &donor, nil
}

// AddDonor creates a donor account. Admin only.
func (s *Session) AddDonor(ctx context.Context, req AddDonorRequest) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "api/donors", req)
	if err != nil {
		return nil, err
	}

	var donor User
	if err := decodeJSON(resp, &donor); err != nil {
		return nil, err
	}

	return &donor, nil
}

// UpdateDonor updates a donor record. Admin only.
func (s *Session) UpdateDonor(ctx context.Context, id int64, donor User) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, pathID("api/donors", id), donor)
	if err != nil {
		return nil, err
	}

	var updated User
	if err := decodeJSON(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteDonor removes a donor record. Admin only.
func (s *Session) DeleteDonor(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, pathID("api/donors", id), nil)
	if err != nil {
		return err
	}

	return discard(resp)
}
