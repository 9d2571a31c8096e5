package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name         string
		keys         []string
		header       string
		expectedCode int
	}{
		{"open without keys", nil, "", http.StatusOK},
		{"valid key", []string{"ops-1", "ops-2"}, "ops-2", http.StatusOK},
		{"missing key", []string{"ops-1"}, "", http.StatusUnauthorized},
		{"wrong key", []string{"ops-1"}, "ops-3", http.StatusUnauthorized},
		{"case matters", []string{"ops-1"}, "OPS-1", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.GET("/api/notifications", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, ValidateAPIKey(tt.keys))

			req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
