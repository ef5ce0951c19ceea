package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/api/middleware"
	"github.com/lepdv/todolist-rest/internal/core/domain"
)

// principalFrom extracts the principal resolved by the Auth middleware.
// Handlers behind a role gate always find one; the error is a safety net
// for misconfigured routes.
func principalFrom(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return domain.Principal{}, &domain.Error{Kind: domain.KindRoleDenied, Message: "Access denied!"}
	}
	return p, nil
}

// idParam parses the numeric :id path parameter.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.Validationf("id: must be a number")
	}
	return id, nil
}

// pageParams reads the page/size query parameters with their historical
// defaults (page 0, size 20).
func pageParams(c echo.Context) (page, size int) {
	page, size = 0, 20
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page = n
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}
	return page, size
}
