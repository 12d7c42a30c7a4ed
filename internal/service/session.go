package service

import (
	"context"
	"log/slog"
	"sync"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	"github.com/planboard/planboard/internal/ports"
)

// SessionManager owns the single process-wide session. Every mutation is an
// atomic whole-session replace followed by synchronous notification of all
// subscribers with the new snapshot; consumers never share mutable state
// with the manager.
//
// Concurrent logins are last-write-wins: a second login simply replaces the
// first's result. There is no merge and no in-session role elevation;
// switching identity requires a logout and a fresh login.
type SessionManager struct {
	resolver ports.IdentityResolver
	vault    ports.TokenVault
	logger   *slog.Logger

	mu      sync.Mutex
	session domainauth.Session
	subs    map[int]func(domainauth.Session)
	nextSub int
}

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Resolver ports.IdentityResolver
	Vault    ports.TokenVault
	Logger   *slog.Logger
}

// NewSessionManager constructs a manager in the loading state. Callers must
// invoke Start before the session is observable as anonymous.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		resolver: opts.Resolver,
		vault:    opts.Vault,
		logger:   logger,
		session:  domainauth.Session{Status: domainauth.StatusLoading},
		subs:     make(map[int]func(domainauth.Session)),
	}
}

// Start erases any durably stored credential and publishes the anonymous
// state. The erase happens before the publish: a restart must never resume
// a privileged session, so the stored token is gone by the time anything
// can observe the session. A vault failure is logged and swallowed; it still
// never resurrects a session.
func (m *SessionManager) Start(ctx context.Context) {
	if m.vault != nil {
		if err := m.vault.Clear(ctx); err != nil {
			m.logger.WarnContext(ctx, "clear token vault at boot failed", "error", err)
		}
	}
	m.publish(domainauth.Anonymous())
}

// Login establishes an authenticated session from a bearer token. When
// identity is nil the manager resolves it from the token; a failed resolve
// falls back silently to anonymous with the token cleared, never to a
// half-authenticated session. On success the token is persisted to the
// vault for the lifetime of the process.
func (m *SessionManager) Login(ctx context.Context, token string, identity *domainauth.Identity) {
	if token == "" {
		m.logger.WarnContext(ctx, "login with empty token ignored")
		return
	}

	if identity == nil {
		if m.resolver == nil {
			m.logger.WarnContext(ctx, "no identity resolver configured, dropping session")
			m.clearVault(ctx)
			m.publish(domainauth.Anonymous())
			return
		}
		resolved, err := m.resolver.Resolve(ctx, token)
		if err != nil {
			m.logger.WarnContext(ctx, "identity resolve failed, dropping session", "error", err)
			m.clearVault(ctx)
			m.publish(domainauth.Anonymous())
			return
		}
		identity = &resolved
	}

	if m.vault != nil {
		if err := m.vault.Store(ctx, token); err != nil {
			m.logger.WarnContext(ctx, "store token in vault failed", "error", err)
		}
	}

	m.publish(domainauth.Session{
		Token:    token,
		Identity: identity,
		Status:   domainauth.StatusAuthenticated,
	})
}

// Logout clears the token and identity unconditionally.
func (m *SessionManager) Logout(ctx context.Context) {
	m.clearVault(ctx)
	m.publish(domainauth.Anonymous())
}

// Invalidate handles a global session-invalid signal (a 401 from any API
// call). Same effect as Logout; the reason is only logged.
func (m *SessionManager) Invalidate(ctx context.Context, reason string) {
	m.logger.InfoContext(ctx, "session invalidated", "reason", reason)
	m.Logout(ctx)
}

// Current returns a snapshot of the session.
func (m *SessionManager) Current() domainauth.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Token returns the current credential token, empty when anonymous. It
// satisfies the API client's token source.
func (m *SessionManager) Token() string {
	return m.Current().Token
}

// Subscribe registers a callback invoked with the session snapshot after
// every change. The returned function unsubscribes.
func (m *SessionManager) Subscribe(fn func(domainauth.Session)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

func (m *SessionManager) clearVault(ctx context.Context) {
	if m.vault == nil {
		return
	}
	if err := m.vault.Clear(ctx); err != nil {
		m.logger.WarnContext(ctx, "clear token vault failed", "error", err)
	}
}

func (m *SessionManager) publish(next domainauth.Session) {
	m.mu.Lock()
	m.session = next
	subs := make([]func(domainauth.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
