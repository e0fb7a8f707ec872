package casb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// APIError is the base type for portal-reported failures.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"message"`
	RequestID  string `json:"requestId,omitempty"`
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("casb: API error %d: %s (request_id=%s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("casb: API error %d: %s", e.StatusCode, e.Message)
}

// ValidationError indicates a request invariant was violated before any
// network call was made: mutually exclusive filters both set, a
// pagination bound exceeded, a malformed identity, an unknown enum
// label, or a sort field without a direction.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "casb: validation error: " + e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// MissingCredentialError indicates no tenant credential could be
// resolved: no per-call override and no client-level provider.
type MissingCredentialError struct{}

func (e *MissingCredentialError) Error() string {
	return "casb: no tenant credential available"
}

// NotFoundError indicates the requested resource was not found (404).
type NotFoundError struct {
	APIError
	ResourceType string
	ResourceID   string
}

func (e *NotFoundError) Error() string {
	if e.ResourceType != "" && e.ResourceID != "" {
		return fmt.Sprintf("casb: %s not found: %s", e.ResourceType, e.ResourceID)
	}
	return fmt.Sprintf("casb: resource not found: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ForbiddenError indicates the credential is invalid or lacks the
// privilege for the operation (401/403).
type ForbiddenError struct {
	APIError
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("casb: access forbidden: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ForbiddenError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// BadRequestError indicates the portal rejected the request (400).
// During upload finalization this specifically signals an unknown
// discovery data-source name, carried in DataSource.
type BadRequestError struct {
	APIError
	DataSource string
}

func (e *BadRequestError) Error() string {
	if e.DataSource != "" {
		return fmt.Sprintf("casb: unknown discovery data source %q: %s", e.DataSource, e.Message)
	}
	return fmt.Sprintf("casb: bad request: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *BadRequestError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// UnresolvableHostError indicates the tenant host did not resolve.
type UnresolvableHostError struct {
	Host string
	Err  error
}

func (e *UnresolvableHostError) Error() string {
	return fmt.Sprintf("casb: cannot resolve tenant host %q: %v", e.Host, e.Err)
}

func (e *UnresolvableHostError) Unwrap() error {
	return e.Err
}

// UnknownBackendError covers any transport or backend failure outside
// the closed taxonomy. The original diagnostic message is preserved.
type UnknownBackendError struct {
	APIError
}

func (e *UnknownBackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("casb: backend error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("casb: backend error: %s", e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *UnknownBackendError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// classifyStatus converts a non-2xx portal response into the
// appropriate error type.
func classifyStatus(statusCode int, body []byte, headers http.Header) error {
	base := APIError{
		StatusCode: statusCode,
		RequestID:  headers.Get("X-Request-ID"),
	}

	// Try to parse a structured JSON error response
	if err := json.Unmarshal(body, &base); err != nil {
		base.Message = strings.TrimSpace(string(body))
	}
	if base.Message == "" {
		base.Message = http.StatusText(statusCode)
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &ForbiddenError{APIError: base}
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case statusCode == http.StatusBadRequest:
		return &BadRequestError{APIError: base}
	default:
		return &UnknownBackendError{APIError: base}
	}
}

// classifyTransport converts a transport-level failure, where no status
// code exists, into a typed error. DNS resolution failures get their
// own kind; the error text is inspected as a fallback because the
// transport may wrap *net.DNSError beyond recognition.
func classifyTransport(host string, err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) || strings.Contains(err.Error(), "no such host") {
		return &UnresolvableHostError{Host: host, Err: err}
	}
	return &UnknownBackendError{APIError: APIError{Message: err.Error()}}
}
