package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

// UserHandler serves the authenticated user's own account endpoints.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	Username    *string `json:"username" validate:"omitempty,notblank,min=3,max=100"`
	FullName    *string `json:"fullName" validate:"omitempty,max=100"`
	DateOfBirth *Date   `json:"dateOfBirth"`
}

type editPasswordRequest struct {
	Username    string `json:"username" validate:"required,notblank,min=3,max=100"`
	OldPassword string `json:"oldPassword" validate:"required,notblank,min=3,max=100"`
	NewPassword string `json:"newPassword" validate:"required,notblank,min=3,max=100"`
}

// Get godoc
// @Summary Show the authenticated user's profile
// @Tags user
// @Produce json
// @Success 200 {object} userResponse
// @Failure 403 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/user [get]
func (h *UserHandler) Get(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	u, err := h.users.Get(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// Update godoc
// @Summary Update the authenticated user's profile
// @Tags user
// @Accept json
// @Produce json
// @Param request body updateUserRequest true "fields to change"
// @Success 200 {object} userResponse
// @Failure 400 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/user [put]
func (h *UserHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validationf("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	u, err := h.users.Update(c.Request().Context(), p, ports.UpdateUserInput{
		Username:    req.Username,
		FullName:    req.FullName,
		DateOfBirth: dateOrNil(req.DateOfBirth),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// EditPassword godoc
// @Summary Change the authenticated user's password
// @Tags user
// @Accept json
// @Produce plain
// @Param request body editPasswordRequest true "old and new password"
// @Success 200 {string} string
// @Failure 400 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/user/edit-password [put]
func (h *UserHandler) EditPassword(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req editPasswordRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validationf("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.users.EditPassword(c.Request().Context(), p, ports.EditPasswordInput{
		Username:    req.Username,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Password of %s was edited", req.Username))
}

// DeleteAccount godoc
// @Summary Delete the authenticated user's account and all its tasks
// @Tags user
// @Accept json
// @Produce plain
// @Param request body credentialsRequest true "credentials confirmation"
// @Success 200 {string} string
// @Failure 400 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/user/delete-account [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validationf("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.users.DeleteAccount(c.Request().Context(), p, req.Username, req.Password); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Account of %s was deleted", req.Username))
}
