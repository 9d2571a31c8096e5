package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	secret := "webhook-secret"
	token, err := GenerateToken(jwt.MapClaims{
		"api_key": "abc123",
		"exp":     time.Now().Add(time.Minute).Unix(),
	}, secret)
	require.NoError(t, err)

	claims, err := ValidateToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims["api_key"])
}

func TestValidateToken_Failures(t *testing.T) {
	secret := "webhook-secret"
	expired, err := GenerateToken(jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}, secret)
	require.NoError(t, err)
	otherSecret, err := GenerateToken(jwt.MapClaims{}, "other")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", otherSecret},
		{"garbage", "not-a-token"},
		{"unsigned", "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.e30."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
