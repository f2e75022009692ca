package bloodsdk

// Types mirror the backend DTOs and entities one for one. Field names follow
// the backend's JSON, including the Java-style isAvailable key.

// ============================================================================
// Auth Types
// ============================================================================

// AuthRequest is the credential payload for POST auth/login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// JWTResponse is returned from POST auth/verify-otp. This is the only call
// that yields a bearer credential. Note the backend does not include the
// user's id or email here.
type JWTResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RegisterRequest is the payload for POST auth/register. Age, Contact and
// BloodType are only meaningful for DONOR registrations.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Age       int    `json:"age,omitempty"`
	Contact   string `json:"contact,omitempty"`
	BloodType string `json:"bloodType,omitempty"`
}

// ResetPasswordRequest is the payload for POST auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// ============================================================================
// Entity Types
// ============================================================================

// User is the backend user entity. Password is write-only and never returned.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Age       *int   `json:"age,omitempty"`
	Contact   string `json:"contact,omitempty"`
	BloodType string `json:"bloodType,omitempty"`
	Status    string `json:"status,omitempty"`
}

// Appointment is a donation appointment slot.
type Appointment struct {
	ID              int64  `json:"id"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Location        string `json:"location"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status,omitempty"` // Pending, Confirmed, Completed, Cancelled
	User            *User  `json:"user,omitempty"`
}

// BookAppointmentRequest is the payload for POST api/appointments/book.
type BookAppointmentRequest struct {
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Location        string `json:"location"`
	Notes           string `json:"notes,omitempty"`
}

// Donation is a recorded blood donation.
type Donation struct {
	ID           int64   `json:"id"`
	BloodType    string  `json:"bloodType"`
	Amount       float64 `json:"amount"`
	DonationDate string  `json:"donationDate"`
	Location     string  `json:"location"`
	Notes        string  `json:"notes,omitempty"`
	IsAvailable  bool    `json:"isAvailable"`
	Donor        *User   `json:"donor,omitempty"`
}

// DonateRequest is the payload for POST api/donations/donate.
type DonateRequest struct {
	BloodType    string  `json:"bloodType"`
	Amount       float64 `json:"amount"`
	DonationDate string  `json:"donationDate,omitempty"`
	Location     string  `json:"location"`
	Notes        string  `json:"notes,omitempty"`
	IsAvailable  *bool   `json:"isAvailable,omitempty"`
}

// BloodRequest is a hospital request for blood.
type BloodRequest struct {
	ID            int64   `json:"id"`
	BloodType     string  `json:"bloodType"`
	Amount        float64 `json:"amount"`
	Urgency       string  `json:"urgency"`
	RequesterName string  `json:"requesterName"`
	HospitalName  string  `json:"hospitalName"`
	Reason        string  `json:"reason,omitempty"`
	NeededByDate  string  `json:"neededByDate"`
	Status        string  `json:"status,omitempty"` // Pending, Fulfilled, Cancelled
}

// CreateBloodRequest is the payload for POST api/requests/request.
type CreateBloodRequest struct {
	BloodType     string  `json:"bloodType"`
	Amount        float64 `json:"amount"`
	Urgency       string  `json:"urgency"`
	RequesterName string  `json:"requesterName"`
	HospitalName  string  `json:"hospitalName"`
	Reason        string  `json:"reason,omitempty"`
	NeededByDate  string  `json:"neededByDate"`
}

// AddDonorRequest is the payload for POST api/donors.
type AddDonorRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Contact   string `json:"contact"`
	BloodType string `json:"bloodType"`
	Role      string `json:"role"`
	Password  string `json:"password"`
}

// ============================================================================
// Admin / Summary Types
// ============================================================================

// SummaryResponse is the admin dashboard summary from GET api/admin/summary.
type SummaryResponse struct {
	TotalUsers            int64 `json:"totalUsers"`
	TotalAppointments     int64 `json:"totalAppointments"`
	PendingAppointments   int64 `json:"pendingAppointments"`
	ConfirmedAppointments int64 `json:"confirmedAppointments"`
	CompletedAppointments int64 `json:"completedAppointments"`
	CancelledAppointments int64 `json:"cancelledAppointments"`
}

// ============================================================================
// Pagination
// ============================================================================

// Page is the backend's paginated response envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}
