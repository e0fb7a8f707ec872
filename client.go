// Package casb provides a Go client for a cloud app security tenant's REST API.
//
// Basic usage:
//
//	client, err := casb.NewClient(
//	    casb.WithTenant("contoso.us.portal.cloudappsecurity.com", token),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	filter := &casb.AlertFilter{Severity: []casb.Severity{casb.SeverityHigh}}
//	page, err := client.Alerts.List(ctx, filter, nil)
package casb

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tphakala/go-casb/internal/api"
	"github.com/tphakala/go-casb/internal/auth"
)

// Default configuration values.
const defaultTimeout = 30 * time.Second

// Client is the tenant portal API client.
type Client struct {
	// Accounts provides access to account operations.
	Accounts AccountService

	// Activities provides access to activity log operations.
	Activities ActivityService

	// Alerts provides access to alert operations.
	Alerts AlertService

	// Files provides access to file operations.
	Files FileService

	// Discovery provides discovery log uploads.
	Discovery DiscoveryService

	transport *api.Transport
	provider  CredentialProvider
}

// NewClient creates a new portal client with the given options.
//
// A client may be built without credentials when every call supplies
// its own via WithCredential; a call that resolves no credential at all
// fails with *MissingCredentialError.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// A fixed tenant is checked up front; provider-resolved and
	// per-call credentials are checked when the call is made.
	if cfg.static != nil && cfg.baseURL == "" {
		creds := &auth.Credentials{TenantHost: cfg.static.TenantHost, Token: cfg.static.Token}
		if err := creds.Validate(); err != nil {
			return nil, newValidationError("%v", err)
		}
	}

	transport := api.NewTransport(cfg.baseURL, cfg.httpClient, cfg.timeout, cfg.logger)
	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}

	client := &Client{
		transport: transport,
		provider:  cfg.provider,
	}

	// Initialize services
	client.Accounts = &accountService{client: client}
	client.Activities = &activityService{client: client}
	client.Alerts = &alertService{client: client}
	client.Files = &fileService{client: client}
	client.Discovery = &discoveryService{client: client}

	return client, nil
}

// BaseURL returns the configured base URL override, or the empty string
// when URLs derive from the per-call tenant host.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL
}

// resolveCredentials applies the credential precedence for one call:
// per-call override, then the client-level provider, then failure.
func (c *Client) resolveCredentials(ctx context.Context, reqCfg *requestConfig) (*auth.Credentials, error) {
	cred := reqCfg.credential
	if cred == nil {
		if c.provider == nil {
			return nil, &MissingCredentialError{}
		}
		resolved, err := c.provider.Credential(ctx)
		if err != nil {
			return nil, err
		}
		cred = &resolved
	}

	creds := &auth.Credentials{TenantHost: cred.TenantHost, Token: cred.Token}
	if !creds.Valid() {
		return nil, &MissingCredentialError{}
	}

	// The host is about to be dialed; enforce the tenant domain
	// allow-list unless an explicit base URL overrides it.
	if c.transport.BaseURL == "" {
		if err := creds.Validate(); err != nil {
			return nil, newValidationError("%v", err)
		}
	}

	return creds, nil
}
