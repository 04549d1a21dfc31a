package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"

	dto "task-allocator.com/task-allocator/internal/data_models"
)

// RateLimiter enforces a fixed window per client IP. With a Redis
// client the window counters live in Redis so every instance shares
// them; without one a local bucket map is used. Redis being unreachable
// fails open.
func RateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	if client != nil {
		return redisRateLimiter(client, limit, window)
	}
	return memoryRateLimiter(limit, window)
}

func redisRateLimiter(client rueidis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("rate_limit:%s", c.RealIP())

			count, err := client.Do(ctx, client.B().Incr().Key(key).Build()).AsInt64()
			if err != nil {
				slog.WarnContext(ctx, "rate limit counter unavailable", slog.Any("error", err))
				return next(c)
			}

			if count == 1 {
				expireCmd := client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Build()
				if err := client.Do(ctx, expireCmd).Error(); err != nil {
					slog.WarnContext(ctx, "rate limit expiry failed", slog.Any("error", err))
				}
			}

			if count > int64(limit) {
				return c.JSON(http.StatusTooManyRequests, dto.Failure("rate limit exceeded"))
			}

			return next(c)
		}
	}
}

func memoryRateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				return c.JSON(http.StatusTooManyRequests, dto.Failure("rate limit exceeded"))
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}
