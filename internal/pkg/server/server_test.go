package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Port: 8080, ReadTimeout: 5, WriteTimeout: 10}, nil)

	assert.Equal(t, ":8080", gs.addr)
	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, e.Server.WriteTimeout)
}

func TestGracefulServer_ShutdownRunsComponents(t *testing.T) {
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	sm := NewShutdownManager(logger.NewNopLogger())
	var ran []string
	sm.Register("notifications", func(ctx context.Context) error {
		ran = append(ran, "notifications")
		return nil
	})
	sm.Register("redis", func(ctx context.Context) error {
		ran = append(ran, "redis")
		return nil
	})

	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: 1}, sm)
	go func() { _ = e.Start(gs.addr) }()
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, gs.Shutdown())
	assert.Equal(t, []string{"notifications", "redis"}, ran)
}

func TestShutdownManager_ContinuesPastFailures(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	first := errors.New("nsq stop failed")
	calls := 0

	sm.Register("nsq", func(ctx context.Context) error {
		calls++
		return first
	})
	sm.Register("postgres", func(ctx context.Context) error {
		calls++
		return errors.New("close failed")
	})

	err := sm.Shutdown(context.Background())

	assert.ErrorIs(t, err, first)
	assert.Equal(t, 2, calls)
}

func TestShutdownManager_Empty(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	assert.NoError(t, sm.Shutdown(context.Background()))
}
