//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newRedis(t *testing.T) *RedisCache {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rc := NewRedisCache(endpoint, "", 0)
	require.NoError(t, rc.Connect(ctx))
	t.Cleanup(func() { _ = rc.Close() })
	return rc
}

type entry struct {
	Name string `json:"name"`
}

func TestRedisCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	rc := newRedis(t)

	var got entry
	hit, err := rc.Get(ctx, "genre:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, rc.Set(ctx, "genre:1", entry{Name: "Fantasy"}, time.Minute))

	hit, err = rc.Get(ctx, "genre:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Fantasy", got.Name)

	require.NoError(t, rc.Delete(ctx, "genre:1"))
	hit, err = rc.Get(ctx, "genre:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	rc := newRedis(t)

	for _, key := range []string{"genre:1", "genre:2", "author:1"} {
		require.NoError(t, rc.Set(ctx, key, entry{Name: key}, time.Minute))
	}

	require.NoError(t, rc.DeletePattern(ctx, "genre:*"))

	var got entry
	hit, _ := rc.Get(ctx, "genre:2", &got)
	assert.False(t, hit)
	hit, _ = rc.Get(ctx, "author:1", &got)
	assert.True(t, hit)
	assert.NoError(t, rc.Ping(ctx))
}
