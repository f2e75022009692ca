package bloodsdk

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rangira/bloodlink/pkg/slogx"
)

// SDKClient is a client for the blood-donation backend service.
// It provides access to unauthenticated operations (login, OTP verification,
// registration, password reset) and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new backend client with a request timeout and a
// logging transport that tags every call with a request ID.
func NewSDKClient(baseURL string, logger *slog.Logger) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: slogx.NewTransport(nil, logger),
		},
	}
}

// NewSession creates an authenticated session from an existing bearer token.
// This is used both right after OTP verification and when restoring a cached
// token at startup.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}
