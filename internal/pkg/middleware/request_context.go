package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/requestcontext"
)

const requestContextKey = "request_context"

// RequestContextMiddleware assigns each request its correlation ids. Ids sent
// by the caller are kept when well formed; the final ids are echoed back so
// operators can match a reply to the logs of the SMS and webhook calls it made.
func RequestContextMiddleware(serviceName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqCtx := requestcontext.FromEchoContext(c)
			reqCtx.ServiceName = serviceName

			c.Set(requestContextKey, reqCtx)
			req := c.Request()
			// downstream readers of the header see the sanitized id
			req.Header.Set(requestcontext.HeaderRequestID, reqCtx.RequestID)
			c.SetRequest(req.WithContext(requestcontext.WithRequestContext(req.Context(), reqCtx)))

			c.Response().Header().Set(requestcontext.HeaderRequestID, reqCtx.RequestID)
			c.Response().Header().Set(requestcontext.HeaderTraceID, reqCtx.TraceID)

			return next(c)
		}
	}
}

// GetRequestContext returns the ids stored by RequestContextMiddleware
func GetRequestContext(c echo.Context) *requestcontext.RequestContext {
	if reqCtx, ok := c.Get(requestContextKey).(*requestcontext.RequestContext); ok {
		return reqCtx
	}
	return nil
}
