package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/requestcontext"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack and answers 500
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	requestID := requestcontext.GetRequestID(c.Request().Context())
	if requestID == "" {
		requestID = c.Response().Header().Get(requestcontext.HeaderRequestID)
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}
	if err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"success":    false,
		"error":      "Internal server error",
		"request_id": requestID,
	}); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
