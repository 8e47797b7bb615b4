package access

import "strings"

// Role is a named bundle of permissions. The table below is process-wide
// configuration: immutable at runtime.
type Role struct {
	ID             string
	Name           string
	Permissions    []Permission
	CanManageRoles bool
}

const (
	RoleAdmin        = "admin"
	RoleManager      = "gerente"
	RoleReceptionist = "recepcionista"
	RoleDoctor       = "medico"
	RoleFinancial    = "financeiro"

	// Legacy role id still present on old user records
	roleAdminLegacy = "administrador"
)

var roleTable = map[string]Role{
	RoleAdmin: {
		ID:             RoleAdmin,
		Name:           "Administrador",
		Permissions:    allPermissions,
		CanManageRoles: true,
	},
	RoleManager: {
		ID:   RoleManager,
		Name: "Gerente",
		Permissions: []Permission{
			PermUsersView,
			PermDoctorsView, PermDoctorsCreate, PermDoctorsEdit,
			PermCitiesView, PermCitiesCreate, PermCitiesEdit,
			PermDatesView, PermDatesCreate, PermDatesEdit, PermDatesDelete,
			PermAppointmentsView, PermAppointmentsCreate, PermAppointmentsEdit, PermAppointmentsDelete,
			PermFinancialView, PermFinancialReports,
			PermSettingsView,
		},
	},
	RoleReceptionist: {
		ID:   RoleReceptionist,
		Name: "Recepcionista",
		Permissions: []Permission{
			PermDoctorsView,
			PermCitiesView,
			PermDatesView,
			PermAppointmentsView, PermAppointmentsCreate, PermAppointmentsEdit,
		},
	},
	RoleDoctor: {
		ID:   RoleDoctor,
		Name: "Médico",
		Permissions: []Permission{
			PermCitiesView,
			PermDatesView,
			PermAppointmentsView,
		},
	},
	RoleFinancial: {
		ID:   RoleFinancial,
		Name: "Financeiro",
		Permissions: []Permission{
			PermFinancialView, PermFinancialCreate, PermFinancialEdit, PermFinancialDelete, PermFinancialReports,
		},
	},
}

// NormalizeRole lowercases a stored role id and resolves legacy aliases to
// the canonical table key. Unknown values pass through lowercased so lookups
// resolve to "no permissions" rather than erroring.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	if r == roleAdminLegacy {
		return RoleAdmin
	}
	return r
}

// LookupRole resolves a role id (case-insensitive, alias-aware) against the
// static table.
func LookupRole(role string) (Role, bool) {
	r, ok := roleTable[NormalizeRole(role)]
	return r, ok
}

// Roles returns the static role table as a slice, for listing in the UI.
func Roles() []Role {
	out := make([]Role, 0, len(roleTable))
	for _, id := range []string{RoleAdmin, RoleManager, RoleReceptionist, RoleDoctor, RoleFinancial} {
		out = append(out, roleTable[id])
	}
	return out
}

// IsAdmin reports whether the role id is an administrator-equivalent value.
func IsAdmin(role string) bool {
	return NormalizeRole(role) == RoleAdmin
}
