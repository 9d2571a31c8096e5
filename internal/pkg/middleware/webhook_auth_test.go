package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/reliefhub/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWebhook(t *testing.T, secret, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/webhook/inbound-sms", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := WebhookSignatureMiddleware(secret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestWebhookSignatureMiddleware(t *testing.T) {
	secret := "signature-secret"
	valid, err := jwtpkg.GenerateToken(jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()}, secret)
	require.NoError(t, err)

	tests := []struct {
		name         string
		secret       string
		header       string
		expectedCode int
	}{
		{"disabled without secret", "", "", http.StatusOK},
		{"valid token", secret, "Bearer " + valid, http.StatusOK},
		{"missing header", secret, "", http.StatusUnauthorized},
		{"wrong scheme", secret, "Basic " + valid, http.StatusUnauthorized},
		{"invalid token", secret, "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runWebhook(t, tt.secret, tt.header)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
