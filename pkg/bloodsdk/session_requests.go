package bloodsdk

import (
	"context"
	"net/http"
)

// AllRequests lists every blood request. Admin only.
func (s *Session) AllRequests(ctx context.Context) ([]BloodRequest, error) {
	return s.listRequests(ctx, "api/requests")
}

// PendingRequests lists requests not yet fulfilled or cancelled.
func (s *Session) PendingRequests(ctx context.Context) ([]BloodRequest, error) {
	return s.listRequests(ctx, "api/requests/pending")
}

// UrgentRequests lists requests flagged urgent.
func (s *Session) UrgentRequests(ctx context.Context) ([]BloodRequest, error) {
	return s.listRequests(ctx, "api/requests/urgent")
}

// RequestsByBloodType lists requests for a given blood type.
func (s *Session) RequestsByBloodType(ctx context.Context, bloodType string) ([]BloodRequest, error) {
	return s.listRequests(ctx, "api/requests/blood-type/"+bloodType)
}

// MyRequests lists the authenticated user's own requests.
func (s *Session) MyRequests(ctx context.Context) ([]BloodRequest, error) {
	return s.listRequests(ctx, "api/requests/my-requests")
}

func (s *Session) listRequests(ctx context.Context, path string) ([]BloodRequest, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var requests []BloodRequest
	if err := decodeJSON(resp, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// CreateRequest files a new blood request.
func (s *Session) CreateRequest(ctx context.Context, req CreateBloodRequest) (*BloodRequest, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "api/requests/request", req)
	if err != nil {
		return nil, err
	}

	var created BloodRequest
	if err := decodeJSON(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateRequest updates a blood request. Admin only.
func (s *Session) UpdateRequest(ctx context.Context, id int64, request BloodRequest) (*BloodRequest, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, pathID("api/requests", id), request)
	if err != nil {
		return nil, err
	}

	var updated BloodRequest
	if err := decodeJSON(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// FulfillRequest marks a blood request as fulfilled. Admin only.
func (s *Session) FulfillRequest(ctx context.Context, id int64) (*BloodRequest, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, pathID("api/requests", id)+"/fulfill", nil)
	if err != nil {
		return nil, err
	}

	var fulfilled BloodRequest
	if err := decodeJSON(resp, &fulfilled); err != nil {
		return nil, err
	}

	return &fulfilled, nil
}

// DeleteRequest removes a blood request. Admin only.
func (s *Session) DeleteRequest(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, pathID("api/requests", id), nil)
	if err != nil {
		return err
	}

	return discard(resp)
}
