package cloud

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// loggingTransport tags each request with an X-Request-ID and logs method,
// URL, status, and duration at debug level.
type loggingTransport struct {
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", id)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		slog.Debug("graphql request failed", "request_id", id, "url", req.URL.String(), "duration", time.Since(start), "error", err)
		return nil, err
	}
	slog.Debug("graphql request", "request_id", id, "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}
