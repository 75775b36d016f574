package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"civicsync-reporter/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitWindow = 24 * time.Hour

// Counter is the subset of the Redis client the rate limiter needs
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Decr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// ReportRateLimiter caps how many reports one user may submit per day.
// Submissions the handler rejects are given back. It must run after
// AuthMiddleware.
func ReportRateLimiter(counter Counter, queuePrefix string, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			utils.Unauthorized(c, "User not authenticated")
			return
		}

		ctx := c.Request.Context()
		userKey := queuePrefix + ":" + userID

		count, err := counter.Incr(ctx, userKey).Result()
		if err != nil {
			slog.Error("rate limiter increment failed", "key", userKey, "error", err)
			utils.InternalError(c, "redis error incrementing count")
			return
		}

		// The window starts with the first submission.
		if count == 1 {
			if err := counter.Expire(ctx, userKey, rateLimitWindow).Err(); err != nil {
				slog.Error("rate limiter expire failed", "key", userKey, "error", err)
				utils.InternalError(c, "redis error setting TTL")
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := counter.TTL(ctx, userKey).Result()
			utils.TooManyRequests(c, "rate limit exceeded", retryAfter)
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := counter.Decr(context.WithoutCancel(ctx), userKey).Err(); err != nil {
				slog.Warn("rate limiter rollback failed", "key", userKey, "error", err)
			}
		}
	}
}
