// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular buyer account.
	RoleUser Role = "user"
	// RoleArtist indicates an artist who can list products.
	RoleArtist Role = "artist"
	// RoleAdmin indicates an administrator. Note that admin is still a role:
	// superuser authority is decided by principal identity, not by this field.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleArtist, RoleAdmin:
		return true
	default:
		return false
	}
}

// Privileged reports whether the role may manage products and author blog posts.
func (r Role) Privileged() bool {
	return r == RoleArtist || r == RoleAdmin
}
