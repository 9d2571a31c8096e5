package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &RedisClient{Client: client}, mr
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr)})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client, mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "volunteer:phone:9876543210", "v-1", time.Hour))
	assert.True(t, mr.Exists("volunteer:phone:9876543210"))

	val, err := client.Get(ctx, "volunteer:phone:9876543210")
	require.NoError(t, err)
	assert.Equal(t, "v-1", val)

	require.NoError(t, client.Delete(ctx, "volunteer:phone:9876543210"))
	_, err = client.Get(ctx, "volunteer:phone:9876543210")
	assert.ErrorIs(t, err, redis.Nil)
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	var port int
	_, err := fmt.Sscanf(mr.Port(), "%d", &port)
	require.NoError(t, err)
	return port
}
