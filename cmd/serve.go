package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"task-allocator.com/task-allocator/internal/auth"
	config "task-allocator.com/task-allocator/internal/configs"
	httpapi "task-allocator.com/task-allocator/internal/http"
	repository "task-allocator.com/task-allocator/internal/repositories"
	"task-allocator.com/task-allocator/internal/services"
	"task-allocator.com/task-allocator/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task allocation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabase(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		if redisClient != nil {
			defer redisClient.Close()
		}

		// Collaborators are constructed once here and injected; no
		// package-level connection handles.
		taskRepo := repository.NewTaskRepository(database)
		userRepo := repository.NewUserRepository(database)

		authProvider := auth.NewLocalProvider(database)

		sessions := session.NewManager([]byte(cfg.SessionKey), cfg.SessionMaxAgeSeconds, cfg.SecureCookies)
		if err := auth.ConfigureOAuth(sessions.Store(), cfg.BaseURL, cfg.GoogleClientID, cfg.GoogleClientSecret); err != nil {
			log.Fatalf("oauth setup failed: %v", err)
		}

		taskService := services.NewTaskService(taskRepo)
		authService := services.NewAuthService(userRepo, authProvider)

		e := echo.New()
		handler := httpapi.NewHandler(taskService, authService, sessions)
		httpapi.Register(e, handler, sessions, redisClient, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
