package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/utils"
)

// APIKeyHeader carries the operator key
const APIKeyHeader = "X-API-Key"

// ValidateAPIKey rejects requests whose X-API-Key is not one of keys.
// With no keys configured the routes stay open.
func ValidateAPIKey(keys []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if len(keys) == 0 {
			return next
		}

		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			for _, key := range keys {
				if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					return next(c)
				}
			}

			logger.Warn("Rejected API key",
				logger.String("path", c.Path()),
				logger.String("client_ip", c.RealIP()))
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
