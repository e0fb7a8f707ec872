package casb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	casb "github.com/tphakala/go-casb"
)

func TestAPIError(t *testing.T) {
	t.Run("Error without request ID", func(t *testing.T) {
		err := &casb.APIError{
			StatusCode: 500,
			Message:    "internal error",
		}
		assert.Equal(t, "casb: API error 500: internal error", err.Error())
	})

	t.Run("Error with request ID", func(t *testing.T) {
		err := &casb.APIError{
			StatusCode: 500,
			Message:    "internal error",
			RequestID:  "req-123",
		}
		assert.Equal(t, "casb: API error 500: internal error (request_id=req-123)", err.Error())
	})
}

func TestValidationError(t *testing.T) {
	err := &casb.ValidationError{Message: "limit must be between 1 and 5000"}
	assert.Equal(t, "casb: validation error: limit must be between 1 and 5000", err.Error())
}

func TestMissingCredentialError(t *testing.T) {
	err := &casb.MissingCredentialError{}
	assert.Equal(t, "casb: no tenant credential available", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("with resource info", func(t *testing.T) {
		err := &casb.NotFoundError{
			APIError:     casb.APIError{StatusCode: 404},
			ResourceType: "alert",
			ResourceID:   "55af7900f8dca1ec2b123456",
		}
		assert.Equal(t, "casb: alert not found: 55af7900f8dca1ec2b123456", err.Error())
	})

	t.Run("without resource info", func(t *testing.T) {
		err := &casb.NotFoundError{
			APIError: casb.APIError{
				StatusCode: 404,
				Message:    "not found",
			},
		}
		assert.Equal(t, "casb: resource not found: not found", err.Error())
	})
}

func TestForbiddenError(t *testing.T) {
	err := &casb.ForbiddenError{
		APIError: casb.APIError{StatusCode: 403, Message: "invalid token"},
	}
	assert.Equal(t, "casb: access forbidden: invalid token", err.Error())
}

func TestBadRequestError(t *testing.T) {
	t.Run("with data source", func(t *testing.T) {
		err := &casb.BadRequestError{
			APIError:   casb.APIError{StatusCode: 400, Message: "bad input"},
			DataSource: "branch-proxy",
		}
		assert.Equal(t, `casb: unknown discovery data source "branch-proxy": bad input`, err.Error())
	})

	t.Run("without data source", func(t *testing.T) {
		err := &casb.BadRequestError{
			APIError: casb.APIError{StatusCode: 400, Message: "bad input"},
		}
		assert.Equal(t, "casb: bad request: bad input", err.Error())
	})
}

func TestUnresolvableHostError(t *testing.T) {
	inner := assert.AnError
	err := &casb.UnresolvableHostError{Host: "contoso.example", Err: inner}
	assert.Contains(t, err.Error(), "contoso.example")
	assert.ErrorIs(t, err, inner)
}

func TestUnknownBackendError(t *testing.T) {
	t.Run("with status", func(t *testing.T) {
		err := &casb.UnknownBackendError{
			APIError: casb.APIError{StatusCode: 502, Message: "bad gateway"},
		}
		assert.Equal(t, "casb: backend error 502: bad gateway", err.Error())
	})

	t.Run("without status", func(t *testing.T) {
		err := &casb.UnknownBackendError{
			APIError: casb.APIError{Message: "connection reset"},
		}
		assert.Equal(t, "casb: backend error: connection reset", err.Error())
	})
}

func TestErrorsAs(t *testing.T) {
	// All portal-reported error types are detectable as *APIError.
	tests := []struct {
		name string
		err  error
	}{
		{"NotFoundError", &casb.NotFoundError{APIError: casb.APIError{StatusCode: 404}}},
		{"ForbiddenError", &casb.ForbiddenError{APIError: casb.APIError{StatusCode: 403}}},
		{"BadRequestError", &casb.BadRequestError{APIError: casb.APIError{StatusCode: 400}}},
		{"UnknownBackendError", &casb.UnknownBackendError{APIError: casb.APIError{StatusCode: 500}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var apiErr *casb.APIError
			require.ErrorAs(t, tt.err, &apiErr, "should be detectable as APIError")
		})
	}
}
