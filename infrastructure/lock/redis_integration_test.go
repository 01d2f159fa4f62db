//go:build integration

package lock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisLocker_TryLock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer func() { _ = container.Terminate(ctx) }()

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer client.Close()

	locker := NewRedisLocker(client, time.Minute)
	other := NewRedisLocker(client, time.Minute)

	release, ok, err := locker.TryLock(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = other.TryLock(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, ok, "outra instância não pode travar a mesma campanha")

	release()

	release, ok, err = other.TryLock(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, ok)
	release()

	ttl, err := client.TTL(ctx, defaultKeyPrefix+"c1").Result()
	require.NoError(t, err)
	assert.True(t, ttl < 0, "chave removida após liberar")
}
