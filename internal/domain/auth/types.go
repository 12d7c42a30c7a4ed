package auth

// Package auth contains domain-level types for authentication and the
// process-wide session. It is pure and free of adapter concerns.

import "strings"

// Role represents an application authorization role. The string forms match
// the backend's role enum exactly, so values round-trip through the API
// unchanged.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleProjectManager Role = "ProjectManager"
	RoleTeamMember     Role = "TeamMember"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleTeamMember:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
// Matching is case-insensitive; the canonical form is returned.
func ParseRole(value string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "admin":
		return RoleAdmin, true
	case "projectmanager":
		return RoleProjectManager, true
	case "teammember":
		return RoleTeamMember, true
	default:
		return "", false
	}
}

// Identity is the authenticated user's profile as returned by the identity
// endpoint. It exists only inside an authenticated session and is destroyed
// on logout.
type Identity struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"full_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
}

// Status is the lifecycle state of the process-wide session.
type Status string

const (
	// StatusLoading is the initial state before the boot credential wipe
	// has been published.
	StatusLoading Status = "loading"
	// StatusAnonymous means no credential is held.
	StatusAnonymous Status = "anonymous"
	// StatusAuthenticated means a credential token and identity are held.
	StatusAuthenticated Status = "authenticated"
)

// Session is the process-wide authentication state. Exactly one lives in the
// session manager; consumers receive immutable snapshots of it.
//
// Invariant: Status == StatusAuthenticated implies Token != "".
type Session struct {
	Token    string
	Identity *Identity
	Status   Status
}

// Authenticated reports whether the session holds a credential.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Token != ""
}

// Anonymous returns the canonical empty session.
func Anonymous() Session {
	return Session{Status: StatusAnonymous}
}
