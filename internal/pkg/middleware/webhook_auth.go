package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/reliefhub/internal/pkg/jwt"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/utils"
)

// WebhookSignatureMiddleware verifies the signed bearer token the SMS provider
// attaches to callbacks. An empty secret disables verification.
func WebhookSignatureMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if secret == "" {
			return next
		}
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Missing webhook signature")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], secret)
			if err != nil {
				logger.Warn("Rejected webhook with invalid signature",
					logger.String("path", c.Request().URL.Path),
					logger.Err(err))
				return utils.UnauthorizedResponse(c, "Invalid webhook signature")
			}

			c.Set("webhook_claims", claims)
			return next(c)
		}
	}
}
