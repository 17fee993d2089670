package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"certviewer/internal/config"
)

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Nop{}

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	v, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	_, err := NewRedis(context.Background(), configWithoutAddr())
	assert.EqualError(t, err, "redis address is required")
}

func configWithoutAddr() config.RedisConfig {
	return config.RedisConfig{Password: "secret", DB: 1}
}
