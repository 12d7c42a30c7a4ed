package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
	mocksauth "github.com/planboard/planboard/internal/mocks/auth"
)

func TestSessionManager_StartsLoading(t *testing.T) {
	m := NewSessionManager(SessionManagerOptions{Logger: discardLogger()})
	assert.Equal(t, domainauth.StatusLoading, m.Current().Status)
}

func TestSessionManager_Start_ErasesVaultBeforePublishingAnonymous(t *testing.T) {
	vault := mocksauth.NewMemoryTokenVault()
	vault.Seed("stale-token-from-last-run")

	m := NewSessionManager(SessionManagerOptions{Vault: vault, Logger: discardLogger()})

	var clearedWhenPublished bool
	unsubscribe := m.Subscribe(func(s domainauth.Session) {
		if s.Status == domainauth.StatusAnonymous {
			clearedWhenPublished = !vault.Held()
		}
	})
	defer unsubscribe()

	m.Start(context.Background())

	assert.Equal(t, domainauth.StatusAnonymous, m.Current().Status)
	assert.False(t, vault.Held(), "stored token must be erased at boot")
	assert.True(t, clearedWhenPublished, "erase must happen before the anonymous publish")
}

func TestSessionManager_Start_VaultFailureStillPublishesAnonymous(t *testing.T) {
	vault := mocksauth.NewMemoryTokenVault()
	vault.ClearErr = errors.New("store offline")

	m := NewSessionManager(SessionManagerOptions{Vault: vault, Logger: discardLogger()})
	m.Start(context.Background())

	assert.Equal(t, domainauth.StatusAnonymous, m.Current().Status)
	assert.Empty(t, m.Token())
}

func TestSessionManager_Login_WithIdentity(t *testing.T) {
	vault := mocksauth.NewMemoryTokenVault()
	m := NewSessionManager(SessionManagerOptions{Vault: vault, Logger: discardLogger()})
	m.Start(context.Background())

	identity := adminIdentity()
	m.Login(context.Background(), "tok123", &identity)

	session := m.Current()
	assert.True(t, session.Authenticated())
	assert.Equal(t, "tok123", session.Token)
	require.NotNil(t, session.Identity)
	assert.Equal(t, domainauth.RoleAdmin, session.Identity.Role)
	assert.Equal(t, []string{"tok123"}, vault.StoreCalls)
}

func TestSessionManager_Login_ResolvesIdentityFromToken(t *testing.T) {
	resolver := mocksauth.NewMockIdentityResolver()
	m := NewSessionManager(SessionManagerOptions{Resolver: resolver, Logger: discardLogger()})
	m.Start(context.Background())

	m.Login(context.Background(), "tok-admin-1", nil)

	session := m.Current()
	require.True(t, session.Authenticated())
	assert.Equal(t, "admin@example.com", session.Identity.Email)
}

func TestSessionManager_Login_ResolveFailureFallsBackToAnonymous(t *testing.T) {
	resolver := mocksauth.NewMockIdentityResolver()
	vault := mocksauth.NewMemoryTokenVault()
	m := NewSessionManager(SessionManagerOptions{Resolver: resolver, Vault: vault, Logger: discardLogger()})
	m.Start(context.Background())

	m.Login(context.Background(), "tok123", nil) // unknown token

	session := m.Current()
	assert.Equal(t, domainauth.StatusAnonymous, session.Status)
	assert.Empty(t, session.Token, "token must not survive a failed resolve")
	assert.Nil(t, session.Identity)
	assert.False(t, vault.Held())
}

func TestSessionManager_Login_EmptyTokenIgnored(t *testing.T) {
	m := anonymousSessions(t)
	m.Login(context.Background(), "", nil)
	assert.Equal(t, domainauth.StatusAnonymous, m.Current().Status)
}

func TestSessionManager_Logout_ClearsEverything(t *testing.T) {
	vault := mocksauth.NewMemoryTokenVault()
	m := NewSessionManager(SessionManagerOptions{Vault: vault, Logger: discardLogger()})
	m.Start(context.Background())

	identity := managerIdentity()
	m.Login(context.Background(), "tok123", &identity)
	m.Logout(context.Background())

	session := m.Current()
	assert.Equal(t, domainauth.StatusAnonymous, session.Status)
	assert.Empty(t, session.Token)
	assert.Nil(t, session.Identity)
	assert.False(t, vault.Held())
}

func TestSessionManager_Invalidate_BehavesLikeLogout(t *testing.T) {
	m := sessionsWith(t, adminIdentity())
	m.Invalidate(context.Background(), "401 from /projects")
	assert.Equal(t, domainauth.StatusAnonymous, m.Current().Status)
}

func TestSessionManager_SubscribersSeeEveryChange(t *testing.T) {
	m := NewSessionManager(SessionManagerOptions{Logger: discardLogger()})

	var statuses []domainauth.Status
	unsubscribe := m.Subscribe(func(s domainauth.Session) {
		statuses = append(statuses, s.Status)
	})

	identity := adminIdentity()
	m.Start(context.Background())
	m.Login(context.Background(), "tok123", &identity)
	m.Logout(context.Background())

	assert.Equal(t, []domainauth.Status{
		domainauth.StatusAnonymous,
		domainauth.StatusAuthenticated,
		domainauth.StatusAnonymous,
	}, statuses)

	unsubscribe()
	m.Login(context.Background(), "tok456", &identity)
	assert.Len(t, statuses, 3, "unsubscribed callback must not fire")
}

func TestSessionManager_SecondLoginReplacesFirst(t *testing.T) {
	m := anonymousSessions(t)

	first := adminIdentity()
	second := memberIdentity()
	m.Login(context.Background(), "tok-a", &first)
	m.Login(context.Background(), "tok-b", &second)

	session := m.Current()
	assert.Equal(t, "tok-b", session.Token)
	assert.Equal(t, domainauth.RoleTeamMember, session.Identity.Role)
}
