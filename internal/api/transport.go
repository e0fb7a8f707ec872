// Package api provides low-level HTTP transport for tenant portal API calls.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tphakala/go-casb/internal/auth"
)

const defaultHTTPTimeout = 30 * time.Second

// Transport handles HTTP communication with a tenant portal.
//
// The target host normally comes from the credential attached to each
// request; BaseURL, when set, overrides it (testing and proxy setups).
type Transport struct {
	BaseURL   string
	UserAgent string

	client *resty.Client
	logger zerolog.Logger
}

// NewTransport creates a Transport. A nil httpClient gets a default
// client with the given timeout; a caller-supplied client keeps its own
// timeout and transport settings.
func NewTransport(baseURL string, httpClient *http.Client, timeout time.Duration, logger zerolog.Logger) *Transport {
	var cli *resty.Client
	if httpClient != nil {
		cli = resty.NewWithClient(httpClient)
	} else {
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		cli = resty.New().SetTimeout(timeout)
	}

	return &Transport{
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		UserAgent: "go-casb/1.0",
		client:    cli,
		logger:    logger,
	}
}

// Request represents one portal API call.
type Request struct {
	Method  string
	Path    string // path under the tenant base URL, e.g. /api/v1/alerts/
	Query   url.Values
	Body    any // JSON-marshaled when non-nil
	Headers http.Header
	Creds   *auth.Credentials
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do executes an API request and returns the raw response.
func (t *Transport) Do(ctx context.Context, req *Request) (*Response, error) {
	target := t.targetURL(req)
	requestID := uuid.NewString()

	r := t.client.R().SetContext(ctx)
	r.SetHeader("Accept", "application/json")
	r.SetHeader("User-Agent", t.UserAgent)
	r.SetHeader("X-Request-ID", requestID)
	if req.Creds != nil {
		r.SetHeader("Authorization", req.Creds.HeaderValue())
	}
	if req.Query != nil {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.Body)
	}
	if req.Headers != nil {
		r.SetHeaderMultiValues(req.Headers)
	}

	resp, err := r.Execute(req.Method, target)
	if err != nil {
		t.logger.Debug().
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("url", target).
			Err(err).
			Msg("portal request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", target).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("portal request")

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, nil
}

// DoJSON executes a request and unmarshals the JSON response into result.
// It only attempts to unmarshal on success status codes (< 400).
func (t *Transport) DoJSON(ctx context.Context, req *Request, result any) (*Response, error) {
	resp, err := t.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	if result != nil && len(resp.Body) > 0 && resp.StatusCode < 400 {
		if err := json.Unmarshal(resp.Body, result); err != nil {
			return resp, fmt.Errorf("unmarshaling response: %w", err)
		}
	}

	return resp, nil
}

// Put sends a payload to an absolute URL outside the tenant API surface,
// such as a storage-provider upload target. No credential is attached.
// A []byte body is sent with Content-Length; an io.Reader body streams
// with chunked transfer encoding.
func (t *Transport) Put(ctx context.Context, rawURL string, headers http.Header, body any) (*Response, error) {
	requestID := uuid.NewString()

	r := t.client.R().SetContext(ctx)
	r.SetHeader("User-Agent", t.UserAgent)
	if headers != nil {
		r.SetHeaderMultiValues(headers)
	}
	r.SetBody(body)

	resp, err := r.Put(rawURL)
	if err != nil {
		t.logger.Debug().
			Str("request_id", requestID).
			Str("url", rawURL).
			Err(err).
			Msg("upload PUT failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Str("url", rawURL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("upload PUT")

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}, nil
}

// targetURL resolves the absolute URL for a request: the explicit base
// URL when configured, otherwise https on the credential's tenant host.
func (t *Transport) targetURL(req *Request) string {
	if t.BaseURL != "" {
		return t.BaseURL + req.Path
	}
	host := ""
	if req.Creds != nil {
		host = req.Creds.TenantHost
	}
	return "https://" + host + req.Path
}
