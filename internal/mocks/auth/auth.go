package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"sync"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	apperrors "github.com/planboard/planboard/internal/errors"
	"github.com/planboard/planboard/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialExchanger = (*MockCredentialExchanger)(nil)
	_ ports.IdentityResolver    = (*MockIdentityResolver)(nil)
	_ ports.TokenVault          = (*MemoryTokenVault)(nil)
)

// MockCredentialExchanger simulates the login exchange with a fixed
// credential table.
type MockCredentialExchanger struct {
	ExchangeFunc func(ctx context.Context, email, password string) (string, error)

	// Accounts maps "email:password" to the token handed out.
	Accounts map[string]string
}

// NewMockCredentialExchanger creates an exchanger with one known account.
func NewMockCredentialExchanger() *MockCredentialExchanger {
	return &MockCredentialExchanger{
		Accounts: map[string]string{
			"admin@example.com:hunter2": "tok-admin-1",
		},
	}
}

func (m *MockCredentialExchanger) Exchange(ctx context.Context, email, password string) (string, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, email, password)
	}
	if token, ok := m.Accounts[email+":"+password]; ok {
		return token, nil
	}
	return "", apperrors.Auth("Incorrect email or password")
}

// MockIdentityResolver resolves known tokens to identities.
type MockIdentityResolver struct {
	ResolveFunc func(ctx context.Context, token string) (domainauth.Identity, error)

	// Identities maps tokens to the identity behind them.
	Identities map[string]domainauth.Identity
}

// NewMockIdentityResolver creates a resolver with one admin token.
func NewMockIdentityResolver() *MockIdentityResolver {
	return &MockIdentityResolver{
		Identities: map[string]domainauth.Identity{
			"tok-admin-1": {
				ID:          1,
				DisplayName: "Ada Admin",
				Email:       "admin@example.com",
				Role:        domainauth.RoleAdmin,
			},
		},
	}
}

func (m *MockIdentityResolver) Resolve(ctx context.Context, token string) (domainauth.Identity, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, token)
	}
	if identity, ok := m.Identities[token]; ok {
		return identity, nil
	}
	return domainauth.Identity{}, apperrors.Authf("token %q rejected", token)
}

// MemoryTokenVault is an in-memory TokenVault that records its call history
// so tests can assert the boot-time erase ordering.
type MemoryTokenVault struct {
	mu     sync.Mutex
	token  string
	stored bool

	StoreCalls []string
	ClearCalls int

	StoreErr error
	ClearErr error
}

// NewMemoryTokenVault creates an empty vault.
func NewMemoryTokenVault() *MemoryTokenVault {
	return &MemoryTokenVault{}
}

// Seed plants a token, simulating a credential left behind by a previous run.
func (v *MemoryTokenVault) Seed(token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.token = token
	v.stored = true
}

// Held reports whether the vault currently holds a token.
func (v *MemoryTokenVault) Held() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stored
}

func (v *MemoryTokenVault) Store(_ context.Context, token string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.StoreCalls = append(v.StoreCalls, token)
	if v.StoreErr != nil {
		return v.StoreErr
	}
	v.token = token
	v.stored = true
	return nil
}

func (v *MemoryTokenVault) Clear(_ context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.ClearCalls++
	if v.ClearErr != nil {
		return v.ClearErr
	}
	v.token = ""
	v.stored = false
	return nil
}
