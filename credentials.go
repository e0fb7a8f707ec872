package casb

import (
	"context"

	"github.com/caarlos0/env/v11"
)

// Credential identifies one tenant and its API token. The host must not
// include a scheme and must belong to a known tenant domain.
type Credential struct {
	TenantHost string
	Token      string
}

// CredentialProvider supplies the tenant credential for API calls.
// Per-call overrides via WithCredential take precedence over the
// client-level provider.
type CredentialProvider interface {
	Credential(ctx context.Context) (Credential, error)
}

// StaticCredentials is a CredentialProvider returning a fixed credential.
type StaticCredentials Credential

// Credential implements CredentialProvider.
func (s StaticCredentials) Credential(_ context.Context) (Credential, error) {
	return Credential(s), nil
}

// EnvCredentials reads the tenant credential from the CASB_TENANT_HOST
// and CASB_API_TOKEN environment variables on every call.
type EnvCredentials struct{}

type envCredential struct {
	TenantHost string `env:"CASB_TENANT_HOST"`
	Token      string `env:"CASB_API_TOKEN"`
}

// Credential implements CredentialProvider.
func (EnvCredentials) Credential(_ context.Context) (Credential, error) {
	var ec envCredential
	if err := env.Parse(&ec); err != nil {
		return Credential{}, err
	}
	if ec.TenantHost == "" || ec.Token == "" {
		return Credential{}, &MissingCredentialError{}
	}
	return Credential{TenantHost: ec.TenantHost, Token: ec.Token}, nil
}
