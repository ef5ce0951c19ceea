package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/api/metrics"
	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

// AuthHandler serves the public authentication endpoints.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=100"`
	Password string `json:"password" validate:"required,notblank,min=3,max=100"`
}

type registrationRequest struct {
	Username    string `json:"username" validate:"required,notblank,min=3,max=100"`
	Password    string `json:"password" validate:"required,notblank,min=3,max=100"`
	FullName    string `json:"fullName" validate:"omitempty,max=100"`
	DateOfBirth *Date  `json:"dateOfBirth"`
}

// Login godoc
// @Summary Authenticate with username and password
// @Tags authenticate
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} jwtResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/v2/authenticate/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validationf("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, jwtResponse{Jwt: token})
}

// loginResult maps a login failure to its metric label.
func loginResult(err error) string {
	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Message {
		case "User is locked":
			return "locked"
		case "Too many failed login attempts":
			return "throttled"
		}
	}
	return "failure"
}

// Registration godoc
// @Summary Register a new account
// @Tags authenticate
// @Accept json
// @Produce json
// @Param request body registrationRequest true "new account"
// @Success 201 {object} jwtResponse
// @Failure 400 {object} api.ErrorResponse
// @Router /api/v2/authenticate/registration [post]
func (h *AuthHandler) Registration(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validationf("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		FullName:    req.FullName,
		DateOfBirth: dateOrNil(req.DateOfBirth),
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, jwtResponse{Jwt: token})
}
