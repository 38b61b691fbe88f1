package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"User", RoleUser, false},
		{"user", RoleUser, false},
		{"ADMIN", RoleAdmin, false},
		{" admin ", RoleAdmin, false},
		{"superuser", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestRolesUnmarshalScalarAndArray(t *testing.T) {
	var fromScalar Roles
	require.NoError(t, json.Unmarshal([]byte(`"Admin"`), &fromScalar))
	require.Equal(t, Roles{RoleAdmin}, fromScalar)

	var fromArray Roles
	require.NoError(t, json.Unmarshal([]byte(`["Admin"]`), &fromArray))
	require.Equal(t, Roles{RoleAdmin}, fromArray)

	var mixed Roles
	require.NoError(t, json.Unmarshal([]byte(`["user","Admin"]`), &mixed))
	require.Equal(t, Roles{RoleUser, RoleAdmin}, mixed)

	var bad Roles
	require.Error(t, json.Unmarshal([]byte(`["wizard"]`), &bad))
	require.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestRolesIntersects(t *testing.T) {
	require.True(t, Roles{RoleUser}.Intersects(Roles{RoleUser, RoleAdmin}))
	require.True(t, Roles{RoleAdmin}.Intersects(Roles{RoleAdmin}))
	require.False(t, Roles{RoleUser}.Intersects(Roles{RoleAdmin}))
	require.False(t, Roles{}.Intersects(Roles{RoleUser, RoleAdmin}))
	require.False(t, Roles{RoleUser}.Intersects(Roles{}))
}

func TestAccountRolesDefaultsToUser(t *testing.T) {
	acct := &Account{}
	require.Equal(t, Roles{RoleUser}, acct.Roles())

	acct.Role = RoleAdmin
	require.Equal(t, Roles{RoleAdmin}, acct.Roles())
}

func TestSanitizedDropsHash(t *testing.T) {
	acct := &Account{Username: "alice", PasswordHash: "secret-hash"}

	clean := acct.Sanitized()
	require.Empty(t, clean.PasswordHash)
	require.Equal(t, "alice", clean.Username)
	// Original is untouched.
	require.Equal(t, "secret-hash", acct.PasswordHash)
}
