package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

// AdminHandler serves the administrator endpoints. The router gates the
// whole group on the ADMIN role.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Param page query int false "page number, from 0"
// @Param size query int false "page size, default 20"
// @Success 200 {object} userListResponse
// @Failure 403 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, size := pageParams(c)
	users, err := h.admin.ListUsers(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// GetUser godoc
// @Summary Show a single user
// @Tags admin
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} userForAdminResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	u, err := h.admin.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserForAdminResponse(u))
}

// LockUser godoc
// @Summary Lock a user account
// @Tags admin
// @Produce plain
// @Param id path int true "user id"
// @Success 200 {string} string
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/admin/users/{id}/lock [put]
func (h *AdminHandler) LockUser(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.admin.LockUser(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("User id=%d was locked", id))
}

// UnlockUser godoc
// @Summary Unlock a user account
// @Tags admin
// @Produce plain
// @Param id path int true "user id"
// @Success 200 {string} string
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/admin/users/{id}/unlock [put]
func (h *AdminHandler) UnlockUser(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.admin.UnlockUser(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("User id=%d was unlocked", id))
}

// DeleteUser godoc
// @Summary Delete a user account and all its tasks
// @Tags admin
// @Accept json
// @Produce plain
// @Param id path int true "user id"
// @Param request body credentialsRequest true "acting admin's credentials"
// @Success 200 {string} string
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/admin/users/{id}/delete [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
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

	if err := h.admin.DeleteUser(c.Request().Context(), p, id, req.Username, req.Password); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("User id=%d was deleted", id))
}

// ListTasks godoc
// @Summary List all tasks across users
// @Tags admin
// @Produce json
// @Param page query int false "page number, from 0"
// @Param size query int false "page size, default 20"
// @Success 200 {object} taskListResponse
// @Failure 403 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/admin/tasks [get]
func (h *AdminHandler) ListTasks(c echo.Context) error {
	page, size := pageParams(c)
	tasks, err := h.admin.ListTasks(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// GetTask godoc
// @Summary Show any user's task
// @Tags admin
// @Produce json
// @Param id path int true "task id"
// @Success 200 {object} taskResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/admin/tasks/{id} [get]
func (h *AdminHandler) GetTask(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	t, err := h.admin.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(t))
}
