package bloodsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Login submits credentials as the first authentication step. On success the
// backend dispatches a one-time code to the user's email; no token is
// returned here. A 401 maps to ErrInvalidCredentials.
func (c *SDKClient) Login(ctx context.Context, username, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "auth/login", AuthRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	if _, err := decodeText(resp); err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return ErrInvalidCredentials
		}
		return err
	}

	return nil
}

// VerifyOTP submits the one-time code as the second authentication step.
// Success yields the bearer token plus the authoritative username and role.
// A 400 maps to ErrInvalidOTP.
func (c *SDKClient) VerifyOTP(ctx context.Context, username, otp string) (*JWTResponse, error) {
	// The backend takes these as query parameters, not a JSON body.
	q := url.Values{
		"username": {username},
		"otp":      {otp},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "auth/verify-otp?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var jwtResp JWTResponse
	if err := decodeJSON(resp, &jwtResp); err != nil {
		if IsStatus(err, http.StatusBadRequest) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}

	if jwtResp.Token == "" {
		return nil, fmt.Errorf("no token received from server")
	}

	return &jwtResp, nil
}

// Register creates a new account. Registration does not log the user in;
// the account still requires the OTP-gated login flow.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "auth/register", req)
	if err != nil {
		return err
	}

	_, err = decodeText(resp)
	return err
}

// RequestPasswordReset asks the backend to email a reset code.
func (c *SDKClient) RequestPasswordReset(ctx context.Context, email string) error {
	q := url.Values{"email": {email}}

	resp, err := c.doRequest(ctx, http.MethodPost, "auth/request-reset?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	_, err = decodeText(resp)
	return err
}

// ResetPassword sets a new password using an emailed reset code.
func (c *SDKClient) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "auth/reset-password", req)
	if err != nil {
		return err
	}

	if _, err := decodeText(resp); err != nil {
		if IsStatus(err, http.StatusBadRequest) {
			return ErrInvalidOTP
		}
		return err
	}

	return nil
}
