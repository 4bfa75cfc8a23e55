// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level carried in the "rol" claim.
type UserRole string

const (
	// Full access including irreversible purges
	RoleAdmin UserRole = "admin"

	// Manages CMS content (portfolio, references, team, feedback)
	RoleEditor UserRole = "editor"

	// Read-only access to management views
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() > 0 && r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
