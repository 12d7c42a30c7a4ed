package devauth

// Package devauth provides a config-driven, in-process auth backend for local
// development. It implements the same ports as the real API client, so the
// rest of the application cannot tell the difference: Exchange validates
// against a fixed account table and mints a random bearer token, Resolve maps
// the token back to the account's identity, and Register grows the table.
// Nothing is persisted; a restart forgets every minted token.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/domain/model"
	apperrors "github.com/planboard/planboard/internal/errors"
	"github.com/planboard/planboard/internal/ports"
)

var _ ports.AuthBackend = (*Provider)(nil)

// DefaultSessionDuration bounds how long a minted token resolves before the
// holder must log in again.
const DefaultSessionDuration = 8 * time.Hour

// Account is one dev login.
type Account struct {
	ID          int64
	Email       string
	Password    string
	DisplayName string
	Role        domainauth.Role
}

// Config controls the dev auth provider.
type Config struct {
	// Accounts to accept. When empty, DefaultAccounts is used.
	Accounts []Account
	// SessionDuration defaults to DefaultSessionDuration when zero.
	SessionDuration time.Duration
}

// DefaultAccounts covers one login per role, so every permission path can be
// exercised locally without a backend.
func DefaultAccounts() []Account {
	return []Account{
		{ID: 1, Email: "admin@planboard.dev", Password: "admin", DisplayName: "Dev Admin", Role: domainauth.RoleAdmin},
		{ID: 2, Email: "manager@planboard.dev", Password: "manager", DisplayName: "Dev Manager", Role: domainauth.RoleProjectManager},
		{ID: 3, Email: "member@planboard.dev", Password: "member", DisplayName: "Dev Member", Role: domainauth.RoleTeamMember},
	}
}

type mintedToken struct {
	identity  domainauth.Identity
	expiresAt time.Time
}

// Provider is an in-memory implementation of ports.AuthBackend.
type Provider struct {
	sessionDuration time.Duration

	mu       sync.Mutex
	accounts map[string]Account // keyed by lowercased email
	tokens   map[string]mintedToken
	nextID   int64
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) *Provider {
	accounts := cfg.Accounts
	if len(accounts) == 0 {
		accounts = DefaultAccounts()
	}
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = DefaultSessionDuration
	}

	p := &Provider{
		sessionDuration: dur,
		accounts:        make(map[string]Account, len(accounts)),
		tokens:          make(map[string]mintedToken),
	}
	for _, acct := range accounts {
		p.accounts[strings.ToLower(acct.Email)] = acct
		if acct.ID >= p.nextID {
			p.nextID = acct.ID + 1
		}
	}
	return p
}

// Exchange validates the credentials and returns a fresh bearer token.
func (p *Provider) Exchange(_ context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.ValidationField("credentials", "Email and password are required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	acct, ok := p.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok || acct.Password != password {
		return "", apperrors.Auth("Invalid email or password")
	}

	token, err := randomToken(32)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "Could not mint a dev token")
	}
	p.tokens[token] = mintedToken{
		identity: domainauth.Identity{
			ID:          acct.ID,
			DisplayName: acct.DisplayName,
			Email:       acct.Email,
			Role:        acct.Role,
		},
		expiresAt: time.Now().Add(p.sessionDuration),
	}
	return token, nil
}

// Resolve returns the identity behind a minted token.
func (p *Provider) Resolve(_ context.Context, token string) (domainauth.Identity, error) {
	if token == "" {
		return domainauth.Identity{}, apperrors.Auth("A credential token is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	minted, ok := p.tokens[token]
	if !ok {
		return domainauth.Identity{}, apperrors.Auth("Your session has expired. Please log in again.")
	}
	if time.Now().After(minted.expiresAt) {
		delete(p.tokens, token)
		return domainauth.Identity{}, apperrors.Auth("Your session has expired. Please log in again.")
	}
	return minted.identity, nil
}

// Register adds an account to the in-memory table.
func (p *Provider) Register(_ context.Context, req model.RegisterUserRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return apperrors.ValidationField("email", "Email is required")
	}
	if req.Password == "" {
		return apperrors.ValidationField("password", "Password is required")
	}
	role := req.Role
	if role == "" {
		role = domainauth.RoleTeamMember
	}
	if !role.Valid() {
		return apperrors.ValidationField("role", "Unknown role")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.accounts[email]; exists {
		return apperrors.ValidationField("email", "Email already registered")
	}
	p.accounts[email] = Account{
		ID:          p.nextID,
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        role,
	}
	p.nextID++
	return nil
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "dev-" + base64.RawURLEncoding.EncodeToString(b), nil
}
