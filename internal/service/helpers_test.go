package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainauth "github.com/planboard/planboard/internal/domain/auth"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sessionsWith returns a started manager authenticated as the given identity.
func sessionsWith(t *testing.T, identity domainauth.Identity) *SessionManager {
	t.Helper()
	m := NewSessionManager(SessionManagerOptions{Logger: discardLogger()})
	m.Start(context.Background())
	m.Login(context.Background(), "tok-test", &identity)
	return m
}

// anonymousSessions returns a started manager with no credential.
func anonymousSessions(t *testing.T) *SessionManager {
	t.Helper()
	m := NewSessionManager(SessionManagerOptions{Logger: discardLogger()})
	m.Start(context.Background())
	return m
}

func adminIdentity() domainauth.Identity {
	return domainauth.Identity{ID: 1, DisplayName: "Ada Admin", Email: "ada@example.com", Role: domainauth.RoleAdmin}
}

func managerIdentity() domainauth.Identity {
	return domainauth.Identity{ID: 2, DisplayName: "Petra Manager", Email: "petra@example.com", Role: domainauth.RoleProjectManager}
}

func memberIdentity() domainauth.Identity {
	return domainauth.Identity{ID: 4, DisplayName: "Toni Member", Email: "toni@example.com", Role: domainauth.RoleTeamMember}
}
