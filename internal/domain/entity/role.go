// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds on the platform.
type Role string

const (
	// RoleEntrepreneur indicates a woman entrepreneur raising funds for projects.
	RoleEntrepreneur Role = "entrepreneur"
	// RoleInvestor indicates an investor browsing and backing projects.
	RoleInvestor Role = "investor"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEntrepreneur, RoleInvestor, RoleAdmin:
		return true
	default:
		return false
	}
}
