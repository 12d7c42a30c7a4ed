package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleProjectManager.Valid())
	assert.True(t, RoleTeamMember.Valid())
	assert.False(t, Role("Owner").Valid())
	assert.False(t, Role("").Valid())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"Admin", RoleAdmin, true},
		{"admin", RoleAdmin, true},
		{"  ProjectManager ", RoleProjectManager, true},
		{"TEAMMEMBER", RoleTeamMember, true},
		{"manager", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestIdentity_JSONShape(t *testing.T) {
	// Field names follow the backend's /auth/me response.
	raw := `{"id": 7, "full_name": "Jordan Blake", "email": "jordan@example.com", "role": "ProjectManager"}`

	var id Identity
	require.NoError(t, json.Unmarshal([]byte(raw), &id))

	assert.Equal(t, int64(7), id.ID)
	assert.Equal(t, "Jordan Blake", id.DisplayName)
	assert.Equal(t, "jordan@example.com", id.Email)
	assert.Equal(t, RoleProjectManager, id.Role)
}

func TestSession_Authenticated(t *testing.T) {
	ident := &Identity{ID: 1, Role: RoleAdmin}

	assert.True(t, Session{Token: "tok", Identity: ident, Status: StatusAuthenticated}.Authenticated())
	assert.False(t, Anonymous().Authenticated())
	assert.False(t, Session{Status: StatusLoading}.Authenticated())
	// Authenticated status without a token violates the invariant and must
	// never read as authenticated.
	assert.False(t, Session{Status: StatusAuthenticated}.Authenticated())
}
