package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allCapabilities = []string{
	PermProductsRead, PermProductsWrite,
	PermSuppliersRead, PermSuppliersWrite,
	PermCustomersRead, PermCustomersWrite,
	PermOrdersRead, PermOrdersWrite,
	PermStockRead, PermStockWrite,
	PermReportsRead,
}

func TestRolePermissions_Tabla(t *testing.T) {
	cases := []struct {
		role  Role
		allow []string
		deny  []string
	}{
		{
			role:  RoleStaff,
			allow: []string{PermProductsRead, PermProductsWrite, PermCustomersRead, PermCustomersWrite, PermOrdersRead, PermOrdersWrite, PermStockRead, PermStockWrite},
			deny:  []string{PermSuppliersRead, PermSuppliersWrite, PermReportsRead, PermissionAll},
		},
		{
			role:  RoleManager,
			allow: allCapabilities,
			deny:  []string{"dashboard.read", PermissionAll},
		},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			perms := RolePermissions(tc.role)
			for _, c := range tc.allow {
				assert.True(t, HasPermission(perms, c), c)
			}
			for _, c := range tc.deny {
				assert.False(t, HasPermission(perms, c), c)
			}
		})
	}
}

func TestRolePermissions_AuditorSoloLectura(t *testing.T) {
	perms := RolePermissions(RoleAuditor)
	for _, c := range allCapabilities {
		assert.Equal(t, strings.HasSuffix(c, ".read"), HasPermission(perms, c), c)
	}
	assert.False(t, HasPermission(perms, PermissionAll))
}

func TestRolePermissions_AdminComodin(t *testing.T) {
	perms := RolePermissions(RoleAdmin)
	assert.Equal(t, []string{PermissionAll}, perms)
	assert.True(t, HasPermission(perms, "cualquier.cosa"))
}

func TestRolePermissions_Copia(t *testing.T) {
	perms := RolePermissions(RoleStaff)
	perms[0] = PermissionAll
	assert.False(t, HasPermission(RolePermissions(RoleStaff), "reports.read"))
	assert.Nil(t, RolePermissions(Role("root")))
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleStaff, RoleAuditor} {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}

func TestUser_CanSinUsuario(t *testing.T) {
	var u *User
	assert.False(t, u.Can(PermProductsRead))
}
