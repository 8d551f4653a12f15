package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoles(t *testing.T) {
	known := []Role{
		{ID: 1, Name: "admin", Permissions: []string{"SALES_CREATE"}},
		{ID: 2, Name: "seller"},
	}

	t.Run("resolves known IDs to canonical roles", func(t *testing.T) {
		roles := NormalizeRoles([]uint{2, 1}, nil, known)
		assert.Equal(t, []Role{known[1], known[0]}, roles)
	})

	t.Run("falls back to parallel name list for unknown IDs", func(t *testing.T) {
		roles := NormalizeRoles([]uint{9}, []string{"auditor"}, known)
		assert.Equal(t, []Role{{ID: 9, Name: "auditor"}}, roles)
	})

	t.Run("unknown ID without a name stays nameless", func(t *testing.T) {
		roles := NormalizeRoles([]uint{9, 10}, []string{"auditor"}, known)
		assert.Equal(t, "", roles[1].Name)
	})
}

func TestRoleHasPermission(t *testing.T) {
	r := Role{Name: "admin", Permissions: []string{"SALES_CREATE", "SALES_READ"}}

	assert.True(t, r.HasPermission("SALES_CREATE"))
	assert.False(t, r.HasPermission("USERS_MANAGE"))
}
