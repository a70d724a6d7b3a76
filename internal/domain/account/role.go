package account

import "strings"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBarber   Role = "barber"
	RoleAdmin    Role = "admin"
)

// ParseRole case-folds raw and reports whether it names a known role.
func ParseRole(raw string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleCustomer, RoleBarber, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// SelfRegistrable reports whether a user may pick this role at sign-up.
func (r Role) SelfRegistrable() bool {
	return r == RoleCustomer || r == RoleBarber
}

func (r Role) String() string { return string(r) }
