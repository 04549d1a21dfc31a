package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	middleware "task-allocator.com/task-allocator/internal/http/middlewares"
	"task-allocator.com/task-allocator/internal/session"
)

func Register(
	e *echo.Echo,
	h *Handler,
	sessions *session.Manager,
	redisClient rueidis.Client,
	rateLimitPerMinute int,
) {
	e.Use(middleware.RateLimiter(redisClient, rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.POST("/auth/signup", h.SignUp)
	api.POST("/auth/signin", h.SignIn)
	api.POST("/auth/signout", h.SignOut)
	api.GET("/users/exists", h.UserExists)

	tasks := api.Group("/tasks", middleware.RequireSession(sessions))
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)

	// Federated sign-in; gothic drives the handshake.
	e.GET("/auth/:provider", h.OAuthBegin)
	e.GET("/auth/:provider/callback", h.OAuthCallback)
}
