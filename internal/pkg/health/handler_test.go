package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	err error
}

func (f fakeChecker) Ping(ctx context.Context) error {
	return f.err
}

func TestPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPingHandler("reliefhub")(c)
	require.NoError(t, err)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "reliefhub", info.ServiceName)
	assert.False(t, info.ServerTime.IsZero())
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name         string
		checkers     map[string]Checker
		expectedCode int
		expectedBody string
	}{
		{
			name:         "all healthy",
			checkers:     map[string]Checker{"postgres": fakeChecker{}, "redis": fakeChecker{}},
			expectedCode: http.StatusOK,
			expectedBody: "ok",
		},
		{
			name:         "redis down",
			checkers:     map[string]Checker{"postgres": fakeChecker{}, "redis": fakeChecker{err: errors.New("connection refused")}},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "unavailable",
		},
		{
			name:         "no checkers",
			checkers:     nil,
			expectedCode: http.StatusOK,
			expectedBody: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, NewReadyHandler(tt.checkers)(c))

			var report ReadinessReport
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedBody, report.Status)
		})
	}
}

func TestRegisterHealthEndpoints(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "reliefhub", nil)

	for _, path := range []string{"/ping", "/health", "/healthz", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
