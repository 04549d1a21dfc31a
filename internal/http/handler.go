package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-allocator.com/task-allocator/internal/data_models"
	apperrors "task-allocator.com/task-allocator/internal/errors"
	"task-allocator.com/task-allocator/internal/http/validators"
	"task-allocator.com/task-allocator/internal/services"
	"task-allocator.com/task-allocator/internal/session"
)

type Handler struct {
	taskService *services.TaskService
	authService *services.AuthService
	sessions    *session.Manager
}

func NewHandler(
	taskService *services.TaskService,
	authService *services.AuthService,
	sessions *session.Manager,
) *Handler {
	return &Handler{
		taskService: taskService,
		authService: authService,
		sessions:    sessions,
	}
}

// CreateTask is the server-side submission handler: defensive fail-fast
// revalidation against server time, normalization, then exactly one
// document write.
func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Failure("invalid JSON payload"))
	}

	deadline, hours, err := validators.ValidateCreateTaskRequest(&req, time.Now().UTC())
	if err != nil {
		return c.JSON(apperrors.StatusCode(err), dto.Failure(apperrors.UserMessage(err, "Failed to create task")))
	}

	ctx := c.Request().Context()

	taskID, err := h.taskService.CreateTask(ctx, &req, deadline, hours)
	if err != nil {
		slog.ErrorContext(ctx, "task creation failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to create task"))
	}

	return c.JSON(http.StatusCreated, dto.CreateTaskResult{
		Result: dto.Success("Task created successfully"),
		TaskID: taskID,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, dto.Failure(apperrors.ErrTaskIDRequired.Message))
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusNotFound, dto.Failure(apperrors.ErrTaskNotFound.Message))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"task":    task,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	ctx := c.Request().Context()

	tasks, err := h.taskService.ListTasks(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "task listing failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to list tasks"))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(tasks),
		"tasks":   tasks,
	})
}
