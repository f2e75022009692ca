package bloodsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestSession wires a Session against a fake backend that asserts the
// bearer header on every call.
func newTestSession(t *testing.T, handler http.HandlerFunc) *Session {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewSDKClient(srv.URL, testLogger()).NewSession("test-token")
}

func TestSessionAttachesBearerToken(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]User{{ID: 1, Username: "dana", Role: "DONOR"}})
	})

	donors, err := session.ListDonors(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 1)
	require.Equal(t, "dana", donors[0].Username)
}

func TestSessionTokenSwap(t *testing.T) {
	t.Parallel()

	session := NewSDKClient("http://example.invalid", testLogger()).NewSession("old")
	session.SetToken("new")
	require.Equal(t, "new", session.Token())
}

func TestMyAppointmentsPagination(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/appointments/my", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "25", r.URL.Query().Get("size"))

		json.NewEncoder(w).Encode(Page[Appointment]{
			Content:       []Appointment{{ID: 7, Location: "City Clinic", Status: "Pending"}},
			TotalElements: 51,
			TotalPages:    3,
			Number:        2,
			Size:          25,
			Last:          true,
		})
	})

	page, err := session.MyAppointments(context.Background(), 2, 25)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, int64(51), page.TotalElements)
	require.True(t, page.Last)
}

func TestUnauthorizedSurfacesAPIError(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	_, err := session.AllDonations(context.Background())
	require.True(t, IsStatus(err, http.StatusUnauthorized))
}

func TestFulfillRequest(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/requests/9/fulfill", r.URL.Path)

		json.NewEncoder(w).Encode(BloodRequest{ID: 9, Status: "Fulfilled"})
	})

	fulfilled, err := session.FulfillRequest(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, "Fulfilled", fulfilled.Status)
}

func TestCanDonate(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/donations/can-donate", r.URL.Path)
		w.Write([]byte("true"))
	})

	eligible, err := session.CanDonate(context.Background())
	require.NoError(t, err)
	require.True(t, eligible)
}

func TestDeleteDonorDiscardsBody(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/donors/3", r.URL.Path)
		w.Write([]byte("Donor deleted"))
	})

	require.NoError(t, session.DeleteDonor(context.Background(), 3))
}

func TestAdminSummary(t *testing.T) {
	t.Parallel()

	session := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SummaryResponse{
			TotalUsers:          40,
			TotalAppointments:   12,
			PendingAppointments: 4,
		})
	})

	summary, err := session.AdminSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(40), summary.TotalUsers)
	require.Equal(t, int64(4), summary.PendingAppointments)
}
