// Package auth provides tenant credential validation and request authentication.
package auth

import (
	"fmt"
	"strings"
)

// tenantSuffixes lists the tenant domain suffixes the portal issues.
// A credential host outside this set is rejected before any request.
var tenantSuffixes = []string{
	".portal.cloudappsecurity.com",
	".adallom.com",
}

// Credentials holds the tenant host and API token for one tenant.
type Credentials struct {
	TenantHost string
	Token      string
}

// Valid reports whether both the host and token are present.
func (c *Credentials) Valid() bool {
	return c != nil && c.TenantHost != "" && c.Token != ""
}

// Validate checks the tenant host invariants: no URL scheme and an
// allow-listed tenant domain suffix.
func (c *Credentials) Validate() error {
	if strings.Contains(c.TenantHost, "://") {
		return fmt.Errorf("tenant host %q must not include a scheme", c.TenantHost)
	}
	for _, suffix := range tenantSuffixes {
		if strings.HasSuffix(c.TenantHost, suffix) {
			return nil
		}
	}
	return fmt.Errorf("tenant host %q does not match a known tenant domain", c.TenantHost)
}

// HeaderValue returns the Authorization header value for the token.
// The portal expects the hex secret lowercased.
func (c *Credentials) HeaderValue() string {
	return "Token " + strings.ToLower(c.Token)
}
