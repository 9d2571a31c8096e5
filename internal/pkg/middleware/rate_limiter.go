package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/database"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis  *database.RedisClient
	Prefix string
	Limit  int           // requests allowed per Period, 0 disables the limiter
	Period time.Duration // fixed window length
}

// RateLimiterMiddleware counts requests per route and client IP in a fixed
// Redis window. A Redis failure lets the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if config.Limit <= 0 || config.Redis == nil {
			return next
		}

		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf(constants.KeyRateLimit, config.Prefix, c.Path(), c.RealIP())

			count, err := config.Redis.Client.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request",
					logger.String("path", c.Path()),
					logger.Err(err))
				return next(c)
			}
			if count == 1 {
				if err := config.Redis.Client.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.Warn("Failed to set rate limit window", logger.String("key", key), logger.Err(err))
				}
			}

			header := c.Response().Header()
			header.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				ttl := config.Redis.Client.TTL(ctx, key).Val()
				if ttl < 0 {
					ttl = config.Period
				}
				header.Set("X-RateLimit-Remaining", "0")
				header.Set("Retry-After", strconv.Itoa(int(ttl.Round(time.Second)/time.Second)))

				logger.Warn("Rate limit exceeded",
					logger.String("path", c.Path()),
					logger.String("client_ip", c.RealIP()))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			}

			header.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
			return next(c)
		}
	}
}

// IPRateLimiter limits requests that trigger SMS sends, keyed by client IP
func IPRateLimiter(limit int, period time.Duration, redis *database.RedisClient) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Redis:  redis,
		Prefix: "sms",
		Limit:  limit,
		Period: period,
	})
}
