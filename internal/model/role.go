package model

import "strings"

// Role is a caller's permission class. Roles are compared by value; any
// case-insensitive parsing happens once, at the boundary, via ParseRole.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleCustomer Role = "customer"
	// RoleNone is the absence of an identity (no token, unknown role).
	RoleNone Role = ""
)

// ParseRole maps an arbitrary role string to a Role. Unknown and empty
// strings map to RoleNone, which no allow-list contains.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "manager":
		return RoleManager
	case "customer":
		return RoleCustomer
	default:
		return RoleNone
	}
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleCustomer
}

// RoleAtLeast checks if role meets or exceeds the minimum required role.
// Unknown roles fail closed.
func RoleAtLeast(role, minimum Role) bool {
	levels := map[Role]int{
		RoleAdmin:    3,
		RoleManager:  2,
		RoleCustomer: 1,
	}
	return levels[role] > 0 && levels[minimum] > 0 && levels[role] >= levels[minimum]
}
