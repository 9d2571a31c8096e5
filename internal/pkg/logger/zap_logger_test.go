package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reliefhub.log")

	zl, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "reliefhub"})
	require.NoError(t, err)

	zl.Info("volunteer registered", String("volunteer_id", "v-1"))
	require.NoError(t, zl.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(content)
	assert.Contains(t, line, `"message":"volunteer registered"`)
	assert.Contains(t, line, `"volunteer_id":"v-1"`)
	assert.Contains(t, line, `"service":"reliefhub"`)
}

func TestNewZapLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	zl, err := NewZapLogger(ZapConfig{Level: "chatty", FilePath: path})
	require.NoError(t, err)

	zl.Debug("hidden")
	zl.Warn("shown")
	require.NoError(t, zl.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(content), "hidden"))
	assert.True(t, strings.Contains(string(content), "shown"))
}

func TestZapEchoMiddleware_WritesHandlerError(t *testing.T) {
	e := echo.New()
	mw := ZapEchoMiddleware(NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/volunteers?lat=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGlobalLogger(t *testing.T) {
	nop := NewNopLogger()
	SetGlobalLogger(nop)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	assert.Same(t, nop, GetGlobalLogger())
	Error("ignored", Err(errors.New("boom")))
}
