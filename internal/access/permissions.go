package access

// Permission is an atomic capability token in "resource:action" form. The
// string values are the serialization boundary with the document store and
// must not change.
type Permission string

const (
	PermUsersView   Permission = "users:view"
	PermUsersCreate Permission = "users:create"
	PermUsersEdit   Permission = "users:edit"
	PermUsersDelete Permission = "users:delete"

	PermDoctorsView   Permission = "doctors:view"
	PermDoctorsCreate Permission = "doctors:create"
	PermDoctorsEdit   Permission = "doctors:edit"
	PermDoctorsDelete Permission = "doctors:delete"

	PermCitiesView   Permission = "cities:view"
	PermCitiesCreate Permission = "cities:create"
	PermCitiesEdit   Permission = "cities:edit"
	PermCitiesDelete Permission = "cities:delete"

	PermDatesView   Permission = "dates:view"
	PermDatesCreate Permission = "dates:create"
	PermDatesEdit   Permission = "dates:edit"
	PermDatesDelete Permission = "dates:delete"

	PermAppointmentsView   Permission = "appointments:view"
	PermAppointmentsCreate Permission = "appointments:create"
	PermAppointmentsEdit   Permission = "appointments:edit"
	PermAppointmentsDelete Permission = "appointments:delete"

	PermFinancialView    Permission = "financial:view"
	PermFinancialCreate  Permission = "financial:create"
	PermFinancialEdit    Permission = "financial:edit"
	PermFinancialDelete  Permission = "financial:delete"
	PermFinancialReports Permission = "financial:reports"

	PermSettingsView Permission = "settings:view"
	PermSettingsEdit Permission = "settings:edit"

	PermRolesManage Permission = "roles:manage"
)

// allPermissions is the full set, in declaration order. Admin-equivalent
// roles always resolve to this entire list.
var allPermissions = []Permission{
	PermUsersView, PermUsersCreate, PermUsersEdit, PermUsersDelete,
	PermDoctorsView, PermDoctorsCreate, PermDoctorsEdit, PermDoctorsDelete,
	PermCitiesView, PermCitiesCreate, PermCitiesEdit, PermCitiesDelete,
	PermDatesView, PermDatesCreate, PermDatesEdit, PermDatesDelete,
	PermAppointmentsView, PermAppointmentsCreate, PermAppointmentsEdit, PermAppointmentsDelete,
	PermFinancialView, PermFinancialCreate, PermFinancialEdit, PermFinancialDelete, PermFinancialReports,
	PermSettingsView, PermSettingsEdit,
	PermRolesManage,
}

// AllPermissions returns a copy of the full permission set.
func AllPermissions() []Permission {
	out := make([]Permission, len(allPermissions))
	copy(out, allPermissions)
	return out
}
