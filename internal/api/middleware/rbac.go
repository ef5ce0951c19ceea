package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// RequireRoles gates a route group on role membership. Anonymous requests
// and principals lacking every allowed role are rejected with 403 by the
// error boundary.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := GetPrincipal(c)
			if ok {
				for _, r := range p.Roles {
					if _, has := allowed[r]; has {
						return next(c)
					}
				}
			}
			return &domain.Error{Kind: domain.KindRoleDenied, Message: "Access denied!"}
		}
	}
}
