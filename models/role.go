package models

import "fmt"

// Role is the closed set of account types. It is validated once when a
// session is established (registration and token decode), never re-parsed
// per request.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDependent    Role = "dependent"
	RoleFamily       Role = "family"
	RoleProfessional Role = "professional"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDependent, RoleFamily, RoleProfessional:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }
