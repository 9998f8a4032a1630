// Copyright (c) 2026 Folio. All rights reserved.

package sec

import "fmt"

// # Account Roles

// Role represents the authorization level granted to an account.
//
// The set is closed: every value used by routes and storage must be one of
// the constants below, which removes the stringly-typed comparison bugs a
// free-form role string invites.
type Role string

const (
	// Can manage all portfolio content (blogs, projects, resumes, inbox)
	RoleAdmin Role = "admin"

	// RoleAdmin plus account management; the bootstrap account is always
	// created with this role
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleSuperAdmin:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("sec: unknown role %q", raw)
	}
}

// # Role Gate

// In reports whether r is a member of the accepted role set.
//
// # Design
//
// The gate is pure set membership: there is no implicit privilege ordering
// between roles. Every route spells out the full set it accepts (in
// practice RoleSuperAdmin is listed wherever RoleAdmin is), which keeps
// per-route access control explicit and auditable.
func (r Role) In(accepted ...Role) bool {
	for _, candidate := range accepted {
		if r == candidate {
			return true
		}
	}
	return false
}

// # Resolved Identity

// Identity is the guard-resolved view of an authenticated account.
//
// # Freshness
//
// It is re-read from storage on every request rather than decoded from the
// token, so a role downgrade or deactivation takes effect on the very next
// request, not only at next login. The password hash is structurally absent
// from this type.
type Identity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"is_active"`
}
