package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/token"
)

func testCodec() *token.Codec {
	return token.NewCodec("test-secret", 30*time.Minute)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	codec := testCodec()
	signed, err := codec.Issue("ivan", []string{domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(codec)(func(c echo.Context) error {
		called = true
		p, ok := GetPrincipal(c)
		if !ok {
			t.Fatal("principal not set")
		}
		if p.Username != "ivan" {
			t.Fatalf("unexpected principal: %+v", p)
		}
		if len(p.Roles) != 1 || p.Roles[0] != domain.RoleUser {
			t.Fatalf("unexpected roles: %v", p.Roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
}

func TestAuthMiddleware_MissingHeaderStaysAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// No header means anonymous, not an error; role gates decide later.
	handler := Auth(testCodec())(func(c echo.Context) error {
		if _, ok := GetPrincipal(c); ok {
			t.Fatal("anonymous request must not carry a principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	e := echo.New()
	past := time.Now().Add(-2 * time.Hour)
	issuing := token.NewCodec("test-secret", 30*time.Minute).WithClock(func() time.Time { return past })
	signed, err := issuing.Issue("ivan", []string{domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testCodec())(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err = handler(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindAuthExpired {
		t.Fatalf("expected AuthExpired, got %v", err)
	}
	if de.Message != "Lifetime of jwt token is expired" {
		t.Fatalf("unexpected message: %q", de.Message)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testCodec())(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err := handler(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindAuthMalformed {
		t.Fatalf("expected AuthMalformed, got %v", err)
	}
	if de.Message != "Invalid jwt token" {
		t.Fatalf("unexpected message: %q", de.Message)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	e := echo.New()
	other := token.NewCodec("other-secret", 30*time.Minute)
	signed, err := other.Issue("ivan", []string{domain.RoleUser})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testCodec())(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	err = handler(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindAuthMalformed {
		t.Fatalf("expected AuthMalformed, got %v", err)
	}
}
