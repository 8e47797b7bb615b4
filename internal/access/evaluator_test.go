package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		permission Permission
		want       bool
	}{
		{"admin has everything", "admin", PermFinancialReports, true},
		{"legacy alias resolves to admin", "administrador", PermUsersDelete, true},
		{"uppercase role", "ADMIN", PermUsersView, true},
		{"mixed case role", "Admin", PermUsersView, true},
		{"receptionist can create appointments", "recepcionista", PermAppointmentsCreate, true},
		{"receptionist cannot view financials", "recepcionista", PermFinancialView, false},
		{"financial can export reports", "financeiro", PermFinancialReports, true},
		{"doctor cannot edit appointments", "medico", PermAppointmentsEdit, false},
		{"unknown role", "nonexistent_role", PermUsersView, false},
		{"empty role", "", PermUsersView, false},
		{"empty permission", "admin", Permission(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.permission))
		})
	}
}

func TestHasPermissionCaseInsensitive(t *testing.T) {
	for _, p := range AllPermissions() {
		assert.Equal(t, HasPermission("admin", p), HasPermission("ADMIN", p), "permission %s", p)
		assert.Equal(t, HasPermission("admin", p), HasPermission("Admin", p), "permission %s", p)
	}
}

func TestHasAnyPermission(t *testing.T) {
	assert.False(t, HasAnyPermission("admin", nil))
	assert.False(t, HasAnyPermission("admin", []Permission{}))
	assert.True(t, HasAnyPermission("recepcionista", []Permission{PermFinancialView, PermAppointmentsView}))
	assert.False(t, HasAnyPermission("medico", []Permission{PermFinancialView, PermUsersView}))
	assert.False(t, HasAnyPermission("unknown", []Permission{PermUsersView}))
}

func TestHasAllPermissions(t *testing.T) {
	// Empty list is vacuously true
	assert.True(t, HasAllPermissions("medico", nil))
	assert.True(t, HasAllPermissions("unknown", []Permission{}))

	assert.True(t, HasAllPermissions("admin", AllPermissions()))
	assert.True(t, HasAllPermissions("recepcionista", []Permission{PermAppointmentsView, PermAppointmentsCreate}))
	assert.False(t, HasAllPermissions("recepcionista", []Permission{PermAppointmentsView, PermFinancialView}))
}

func TestEffectivePermissionsAdminOverride(t *testing.T) {
	full := AllPermissions()

	// Admin-equivalent roles always resolve to the full set, regardless of
	// what was stored
	for _, stored := range [][]Permission{nil, {}, {PermUsersView}, full} {
		for _, role := range []string{"admin", "ADMIN", "administrador"} {
			got := EffectivePermissions(role, stored)
			assert.Equal(t, full, got, "role=%s stored=%v", role, stored)
		}
	}

	// Idempotent: feeding the result back in changes nothing
	once := EffectivePermissions("admin", []Permission{PermUsersView})
	twice := EffectivePermissions("admin", once)
	assert.Equal(t, once, twice)
}

func TestEffectivePermissionsNonAdmin(t *testing.T) {
	stored := []Permission{PermAppointmentsView}
	assert.Equal(t, stored, EffectivePermissions("recepcionista", stored))

	// No stored list falls back to the role table
	table, _ := LookupRole("medico")
	assert.Equal(t, table.Permissions, EffectivePermissions("medico", nil))

	assert.Empty(t, EffectivePermissions("unknown", nil))
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "admin", NormalizeRole("ADMIN"))
	assert.Equal(t, "admin", NormalizeRole("  Administrador "))
	assert.Equal(t, "gerente", NormalizeRole("Gerente"))
	assert.Equal(t, "whatever", NormalizeRole("Whatever"))
}

func TestRolesTableStable(t *testing.T) {
	roles := Roles()
	assert.Len(t, roles, 5)
	assert.Equal(t, "admin", roles[0].ID)
	assert.True(t, roles[0].CanManageRoles)
	for _, r := range roles[1:] {
		assert.False(t, r.CanManageRoles, "role %s", r.ID)
	}
}
