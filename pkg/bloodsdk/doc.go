/*
Package bloodsdk provides a typed client for the blood-donation backend's
REST API.

# Overview

The package is organized around two types:

  - SDKClient: unauthenticated operations — the two-step login flow,
    registration, and password reset
  - Session: authenticated operations carrying a bearer token

Create an SDKClient to run the login flow:

	client := bloodsdk.NewSDKClient("http://localhost:8080", logger)

	// Step 1: credentials. Success means an OTP was emailed; no token yet.
	err := client.Login(ctx, "alice", "secret")

	// Step 2: the one-time code. This is the only call that yields a token.
	jwt, err := client.VerifyOTP(ctx, "alice", "123456")

	session := client.NewSession(jwt.Token)

Use the Session for everything behind authentication:

	donors, err := session.ListDonors(ctx)
	appts, err := session.MyAppointments(ctx, 0, 10)
	summary, err := session.AdminSummary(ctx) // Admin only

# Error Handling

Non-2xx responses become *APIError values carrying the HTTP status and the
backend's message. The auth endpoints additionally map their rejection
statuses to sentinels:

  - ErrInvalidCredentials: 401 from the login step
  - ErrInvalidOTP: 400 from OTP verification or password reset

The backend does not issue refresh tokens. A stale bearer token surfaces as
an *APIError with status 401 on the next call; callers should drop their
session and rerun the login flow.

# Thread Safety

Sessions are safe for concurrent use; the token is guarded by a read/write
lock so it can be swapped after a re-login without rebuilding the Session.
*/
package bloodsdk
