package auth

import "fmt"

// Role is the closed set of actor roles issued by the identity provider.
type Role string

const (
	RoleClient     Role = "client"
	RoleAssistant  Role = "assistant"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleOwner      Role = "owner"
)

// ParseRole rejects anything outside the closed set.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleClient, RoleAssistant, RoleManager, RoleSupervisor, RoleOwner:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// IsStaff reports whether the role acts on behalf of the agency.
// Every role is listed; values that bypassed ParseRole are never staff.
func (r Role) IsStaff() bool {
	switch r {
	case RoleClient:
		return false
	case RoleAssistant, RoleManager, RoleSupervisor, RoleOwner:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }
