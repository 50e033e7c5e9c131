// Package cloud provides an HTTP client for the metadata store's GraphQL
// endpoint.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/finops-claw-gang/flowmeta/internal/graphql"
)

// Client executes GraphQL queries against the cloud API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTracing wraps the transport with OpenTelemetry HTTP instrumentation.
func WithTracing() Option {
	return func(c *Client) {
		c.httpClient.Transport = otelhttp.NewTransport(c.httpClient.Transport)
	}
}

// New creates a client for endpoint. timeout bounds each request; zero means
// no timeout.
func New(endpoint string, timeout time.Duration, opts ...Option) *Client {
	return build(endpoint, &http.Client{Timeout: timeout}, opts)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(endpoint string, httpClient *http.Client, opts ...Option) *Client {
	hc := *httpClient
	return build(endpoint, &hc, opts)
}

func build(endpoint string, hc *http.Client, opts []Option) *Client {
	if hc.Transport == nil {
		hc.Transport = http.DefaultTransport
	}
	hc.Transport = &loggingTransport{next: hc.Transport}
	c := &Client{endpoint: endpoint, httpClient: hc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Error is one entry of a GraphQL `errors` array.
type Error struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

// ResponseError reports a response that carried GraphQL errors.
type ResponseError struct {
	Errors []Error
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return "cloud: graphql errors: " + strings.Join(msgs, "; ")
}

type requestBody struct {
	Query string `json:"query"`
}

type responseBody struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// Do posts req and decodes the response `data` object into out.
func (c *Client) Do(ctx context.Context, req graphql.Request, out any) error {
	body, err := json.Marshal(requestBody{Query: req.String()})
	if err != nil {
		return fmt.Errorf("cloud: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cloud: invalid endpoint: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("cloud: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("cloud: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var result responseBody
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("cloud: decode response: %w", err)
	}
	if len(result.Errors) > 0 {
		return &ResponseError{Errors: result.Errors}
	}
	if out == nil || len(result.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("cloud: decode data: %w", err)
	}
	return nil
}
