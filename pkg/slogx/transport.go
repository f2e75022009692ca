package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rangira/bloodlink/pkg/idx"
)

// Transport is an http.RoundTripper that logs outgoing requests and tags
// each one with an X-Request-ID header so client logs can be correlated with
// backend logs. It wraps Base (http.DefaultTransport when nil).
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// NewTransport wraps base with request logging against logger.
func NewTransport(base http.RoundTripper, logger *slog.Logger) *Transport {
	return &Transport{Base: base, Logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	reqID := req.Header.Get("X-Request-ID")
	if reqID == "" {
		reqID = idx.New().String()
		// Clone before mutating; RoundTrippers must not modify the caller's
		// request. The request-scoped logger rides along on the context.
		ctx := WithRequestID(WithContext(req.Context(), t.logger()), reqID)
		req = req.Clone(ctx)
		req.Header.Set("X-Request-ID", reqID)
	}

	logger := t.logger().With(
		"req_id", reqID,
		"method", req.Method,
		"path", req.URL.Path,
	)

	resp, err := t.base().RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		logger.Warn("api_request_failed", "duration_ms", duration, "err", err)
		return nil, err
	}

	logger.Debug("api_request",
		"status", resp.StatusCode,
		"duration_ms", duration,
	)
	return resp, nil
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}
