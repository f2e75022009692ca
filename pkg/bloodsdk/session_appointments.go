package bloodsdk

import (
	"context"
	"fmt"
	"net/http"
)

// BookAppointment books a donation appointment for the authenticated user.
func (s *Session) BookAppointment(ctx context.Context, req BookAppointmentRequest) (*Appointment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "api/appointments/book", req)
	if err != nil {
		return nil, err
	}

	var appt Appointment
	if err := decodeJSON(resp, &appt); err != nil {
		return nil, err
	}

	return &appt, nil
}

// MyAppointments lists the authenticated user's appointments, paginated.
func (s *Session) MyAppointments(ctx context.Context, page, size int) (*Page[Appointment], error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, pathPaged("api/appointments/my", page, size), nil)
	if err != nil {
		return nil, err
	}

	var result Page[Appointment]
	if err := decodeJSON(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AllAppointments lists every appointment in the system. Admin only.
func (s *Session) AllAppointments(ctx context.Context, page, size int) (*Page[Appointment], error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, pathPaged("api/appointments/all", page, size), nil)
	if err != nil {
		return nil, err
	}

	var result Page[Appointment]
	if err := decodeJSON(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func pathPaged(path string, page, size int) string {
	return fmt.Sprintf("%s?page=%d&size=%d", path, page, size)
}

func pathID(path string, id int64) string {
	return fmt.Sprintf("%s/%d", path, id)
}
