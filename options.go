package casb

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL    string
	provider   CredentialProvider
	static     *Credential
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
}

// WithTenant sets a fixed tenant credential for all calls. The host
// must carry no scheme and belong to a known tenant domain.
func WithTenant(host, token string) ClientOption {
	return func(c *clientConfig) {
		cred := Credential{TenantHost: host, Token: token}
		c.static = &cred
		c.provider = StaticCredentials(cred)
	}
}

// WithCredentialProvider sets the client-level credential source,
// consulted when a call carries no WithCredential override.
func WithCredentialProvider(p CredentialProvider) ClientOption {
	return func(c *clientConfig) {
		c.provider = p
	}
}

// WithBaseURL overrides the https://<tenantHost> URL derivation with an
// explicit base URL. Intended for tests and proxy setups; the tenant
// domain allow-list is not applied to it.
func WithBaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the default request timeout.
// Note: This option is ignored when WithHTTPClient is used;
// set the timeout directly on the provided client instead.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger used for request-level debug logging.
// Logging is off by default.
func WithLogger(logger zerolog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// RequestOption configures individual API requests.
type RequestOption func(*requestConfig)

type requestConfig struct {
	headers    http.Header
	credential *Credential
}

func newRequestConfig() *requestConfig {
	return &requestConfig{
		headers: make(http.Header),
	}
}

func (r *requestConfig) apply(opts ...RequestOption) {
	for _, opt := range opts {
		opt(r)
	}
}

// WithHeader adds a custom header to a request.
func WithHeader(key, value string) RequestOption {
	return func(r *requestConfig) {
		r.headers.Set(key, value)
	}
}

// WithHeaders adds multiple custom headers to a request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *requestConfig) {
		for k, v := range headers {
			r.headers.Set(k, v)
		}
	}
}

// WithCredential overrides the tenant credential for one request. It
// takes precedence over the client-level provider.
func WithCredential(cred Credential) RequestOption {
	return func(r *requestConfig) {
		r.credential = &cred
	}
}
