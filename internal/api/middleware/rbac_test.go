package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/core/domain"
)

func gateContext(t *testing.T, p *domain.Principal) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		SetPrincipal(c, *p)
	}
	return c
}

func TestRequireRoles_Allowed(t *testing.T) {
	c := gateContext(t, &domain.Principal{Username: "ivan", Roles: []string{domain.RoleUser}})

	called := false
	handler := RequireRoles(domain.RoleUser, domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
}

func TestRequireRoles_WrongRole(t *testing.T) {
	c := gateContext(t, &domain.Principal{Username: "ivan", Roles: []string{domain.RoleUser}})

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindRoleDenied {
		t.Fatalf("expected RoleDenied, got %v", err)
	}
	if de.Message != "Access denied!" {
		t.Fatalf("unexpected message: %q", de.Message)
	}
}

func TestRequireRoles_Anonymous(t *testing.T) {
	c := gateContext(t, nil)

	handler := RequireRoles(domain.RoleUser, domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindRoleDenied {
		t.Fatalf("expected RoleDenied for anonymous, got %v", err)
	}
}
