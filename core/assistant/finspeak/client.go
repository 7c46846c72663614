// Package finspeak implements the HTTP client for the FinSpeak banking
// assistant backend.
package finspeak

import (
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultUserID  = "demo_user"

	// defaultTimeout bounds every request so a hung backend cannot leave the
	// conversation stuck in its processing state.
	defaultTimeout = 30 * time.Second
)

type Client struct {
	baseURL string
	userID  string

	httpClient *http.Client
}

type ClientOption func(*Client)

// WithUserID sets the default user identifier sent with every request.
func WithUserID(userID string) ClientOption {
	return func(c *Client) { c.userID = userID }
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithHTTPClient replaces the underlying HTTP client entirely. The caller
// becomes responsible for transport instrumentation and timeouts.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		userID:  defaultUserID,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
					return operationName + " " + request.URL.Path
				}),
			),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
