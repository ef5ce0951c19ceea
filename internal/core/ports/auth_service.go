package ports

import (
	"context"
	"time"
)

// RegisterInput carries the data for a new account. Optional fields are
// pointers so absence is distinguishable from zero values.
type RegisterInput struct {
	Username    string
	Password    string
	FullName    string
	DateOfBirth *time.Time
}

// AuthService covers login and registration. Both return a signed token
// on success.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, input RegisterInput) (string, error)
}
