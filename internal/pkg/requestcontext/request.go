package requestcontext

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	RequestIDKey   ContextKey = "request_id"
	TraceIDKey     ContextKey = "trace_id"
	ServiceNameKey ContextKey = "service_name"
)

// Correlation headers accepted from callers and echoed on every response
const (
	HeaderRequestID = echo.HeaderXRequestID
	HeaderTraceID   = "X-Trace-ID"
)

// validID bounds caller-supplied ids before they reach logs and outbound calls
var validID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID   string
	TraceID     string
	ServiceName string
}

// WithRequestContext adds request context to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, TraceIDKey, reqCtx.TraceID)
	ctx = context.WithValue(ctx, ServiceNameKey, reqCtx.ServiceName)
	return ctx
}

// FromEchoContext builds a request context from the correlation headers.
// Missing or malformed request ids are replaced by a fresh uuid; the trace id
// falls back to the request id.
func FromEchoContext(c echo.Context) *RequestContext {
	reqCtx := &RequestContext{RequestID: uuid.New().String()}

	if requestID := c.Request().Header.Get(HeaderRequestID); ValidID(requestID) {
		reqCtx.RequestID = requestID
	}

	reqCtx.TraceID = reqCtx.RequestID
	if traceID := c.Request().Header.Get(HeaderTraceID); ValidID(traceID) {
		reqCtx.TraceID = traceID
	}

	return reqCtx
}

// ValidID reports whether id is safe to adopt as a request or trace id
func ValidID(id string) bool {
	return validID.MatchString(id)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetTraceID extracts trace ID from context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}
