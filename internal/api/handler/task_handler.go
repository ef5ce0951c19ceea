package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lepdv/todolist-rest/internal/api/metrics"
	"github.com/lepdv/todolist-rest/internal/core/domain"
	"github.com/lepdv/todolist-rest/internal/core/ports"
)

// TaskHandler serves the authenticated user's task endpoints.
type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type createTaskRequest struct {
	Description string `json:"description" validate:"required,notblank,min=3,max=200"`
	DueDate     *Date  `json:"dueDate"`
}

type updateTaskRequest struct {
	Description *string `json:"description" validate:"omitempty,notblank,min=3,max=200"`
	DueDate     *Date   `json:"dueDate"`
}

// Create godoc
// @Summary Create a task owned by the authenticated user
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body createTaskRequest true "new task"
// @Success 201 {object} taskResponse
// @Failure 400 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validationf("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	t, err := h.tasks.Create(c.Request().Context(), p, ports.CreateTaskInput{
		Description: req.Description,
		DueDate:     dateOrNil(req.DueDate),
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(t))
}

// TodoList godoc
// @Summary List the authenticated user's tasks
// @Tags tasks
// @Produce json
// @Param page query int false "page number, from 0"
// @Param size query int false "page size, default 20"
// @Success 200 {object} taskListResponse
// @Failure 403 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/tasks/todo-list [get]
func (h *TaskHandler) TodoList(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	page, size := pageParams(c)
	list, err := h.tasks.ListOwn(c.Request().Context(), p, page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskListResponse(list))
}

// Get godoc
// @Summary Show a single task
// @Tags tasks
// @Produce json
// @Param id path int true "task id"
// @Success 200 {object} taskResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	t, err := h.tasks.GetByID(c.Request().Context(), p, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(t))
}

// Update godoc
// @Summary Update a task's description or due date
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "task id"
// @Param request body updateTaskRequest true "fields to change"
// @Success 200 {object} taskResponse
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validationf("request body is not valid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	t, err := h.tasks.Update(c.Request().Context(), p, id, ports.UpdateTaskInput{
		Description: req.Description,
		DueDate:     dateOrNil(req.DueDate),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(t))
}

// MarkAsCompleted godoc
// @Summary Mark a task as completed
// @Tags tasks
// @Produce plain
// @Param id path int true "task id"
// @Success 200 {string} string
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/tasks/{id}/mark-as-completed [put]
func (h *TaskHandler) MarkAsCompleted(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.tasks.MarkCompleted(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Task with id=%d was marked as completed", id))
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce plain
// @Param id path int true "task id"
// @Success 200 {string} string
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /api/v2/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.tasks.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}
	return c.String(http.StatusOK, fmt.Sprintf("Task with id=%d was deleted", id))
}
