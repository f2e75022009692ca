package bloodsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListUsers lists every account in the system. Admin only.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "api/users", nil)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeJSON(resp, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// SearchUsers performs a paginated username/email search. Admin only.
func (s *Session) SearchUsers(ctx context.Context, query string, page, size int) (*Page[User], error) {
	q := url.Values{
		"query": {query},
		"page":  {fmt.Sprint(page)},
		"size":  {fmt.Sprint(size)},
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, "api/users/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result Page[User]
	if err := decodeJSON(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateUser updates an account. Admin only.
func (s *Session) UpdateUser(ctx context.Context, id int64, user User) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, pathID("api/users", id), user)
	if err != nil {
		return nil, err
	}

	var updated User
	if err := decodeJSON(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteUser removes an account. Admin only.
func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, pathID("api/users", id), nil)
	if err != nil {
		return err
	}

	return discard(resp)
}

// AdminSummary returns the aggregate counts shown on the admin dashboard.
// Admin only.
func (s *Session) AdminSummary(ctx context.Context) (*SummaryResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "api/admin/summary", nil)
	if err != nil {
		return nil, err
	}

	var summary SummaryResponse
	if err := decodeJSON(resp, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
