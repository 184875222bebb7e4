package model

// Role names a caller's privilege level.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Caller is the authorization assertion handed over by the transport layer.
// The zero value is an anonymous caller.
type Caller struct {
	ID   int64
	Role Role
}

// Authenticated reports whether the caller carries an identity.
func (c Caller) Authenticated() bool {
	return c.ID > 0
}

// IsAdmin reports whether the caller may manage orders.
func (c Caller) IsAdmin() bool {
	return c.Authenticated() && c.Role == RoleAdmin
}
