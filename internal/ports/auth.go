package ports

// Package ports defines interfaces (hexagonal ports) for the dashboard core.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
)

// CredentialExchanger trades user credentials for an opaque bearer token.
// The backend expects a form-encoded password grant.
type CredentialExchanger interface {
	Exchange(ctx context.Context, email, password string) (token string, err error)
}

// IdentityResolver fetches the profile behind a bearer token.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domainauth.Identity, error)
}

// AuthBackend is the full credential surface the application wires at boot:
// the real HTTP client in production, or the in-process dev provider when
// DEV_AUTH is enabled.
type AuthBackend interface {
	CredentialExchanger
	IdentityResolver
	RegistrationAPI
}

// TokenVault is the durable resting place of the credential token between
// mutations. Login stores, logout clears, and boot clears unconditionally
// before the anonymous state is published. There is deliberately no Load:
// a stored token must never be readable across a restart, so the vault is
// write-and-erase only.
type TokenVault interface {
	Store(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
