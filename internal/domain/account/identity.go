package account

// Identity is the authenticated caller as resolved from a bearer token.
// The zero value means no authenticated user.
type Identity struct {
	UserID uint
	Role   Role
}

func (i Identity) Authenticated() bool {
	return i.UserID != 0
}

func (i Identity) Is(r Role) bool {
	return i.Authenticated() && i.Role == r
}
