package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RolePlayer is granted to every registered user.
	RolePlayer Role = "player"
	// RoleAdmin can manage the shared planet catalog.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePlayer, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts s to a Role, falling back to RolePlayer for unknown values.
func ParseRole(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RolePlayer
	}

	return role
}
