package access

// HasPermission reports whether the role's permission set contains the given
// permission. Role lookup is case-insensitive and alias-aware; an empty or
// unknown role, or an empty permission, yields false. Never panics.
func HasPermission(role string, permission Permission) bool {
	if role == "" || permission == "" {
		return false
	}
	r, ok := LookupRole(role)
	if !ok {
		return false
	}
	for _, p := range r.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether at least one of the listed permissions is
// granted to the role. An empty list yields false.
func HasAnyPermission(role string, permissions []Permission) bool {
	for _, p := range permissions {
		if HasPermission(role, p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether every listed permission is granted to the
// role. An empty list is vacuously true.
func HasAllPermissions(role string, permissions []Permission) bool {
	for _, p := range permissions {
		if !HasPermission(role, p) {
			return false
		}
	}
	return true
}

// EffectivePermissions resolves the permission set to use for a user, both
// for access checks and for any persisted update. Admin-equivalent roles are
// always forced to the full set, regardless of a stale or partial stored
// list. Other roles keep their stored list when present, falling back to the
// role table.
func EffectivePermissions(role string, stored []Permission) []Permission {
	if IsAdmin(role) {
		return AllPermissions()
	}
	if len(stored) > 0 {
		out := make([]Permission, len(stored))
		copy(out, stored)
		return out
	}
	if r, ok := LookupRole(role); ok {
		out := make([]Permission, len(r.Permissions))
		copy(out, r.Permissions)
		return out
	}
	return []Permission{}
}
