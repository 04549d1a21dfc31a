package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-allocator.com/task-allocator/internal/data_models"
	"task-allocator.com/task-allocator/internal/session"
)

// ContextUserKey is where RequireSession stores the authenticated user.
const ContextUserKey = "session_user"

// RequireSession gates a route group on an authenticated session.
func RequireSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := sessions.CurrentUser(c.Request())
			if err != nil {
				return c.JSON(http.StatusUnauthorized, dto.Failure("authentication required"))
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}
