package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/token"
)

const principalKey = "principal"

// Auth resolves the request principal from the Authorization header.
// A missing or non-bearer header leaves the request anonymous and lets
// the chain continue; protected route groups reject anonymous principals
// at their role gate.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, err := codec.Parse(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return &domain.Error{Kind: domain.KindAuthExpired, Message: "Lifetime of jwt token is expired"}
				}
				return &domain.Error{Kind: domain.KindAuthMalformed, Message: "Invalid jwt token"}
			}

			SetPrincipal(c, domain.Principal{Username: claims.Subject, Roles: claims.Roles})
			return next(c)
		}
	}
}

// SetPrincipal stores the resolved principal in the request scope.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the request principal; ok is false for anonymous
// requests.
func GetPrincipal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
