package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User models an account that owns tasks. Exactly one role per account;
// roles travel as a list inside token claims for forward compatibility.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name,omitempty"`
	DateOfBirth  time.Time `json:"date_of_birth,omitempty"`
	Role         string    `json:"role"`
	Locked       bool      `json:"locked"`
}

// Roles returns the role list as carried in token claims.
func (u *User) Roles() []string {
	return []string{u.Role}
}

// Principal is the authenticated identity resolved from a request token.
// It is threaded explicitly through the request scope, never stored globally.
type Principal struct {
	Username string
	Roles    []string
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p Principal) IsAdmin() bool {
	for _, r := range p.Roles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
