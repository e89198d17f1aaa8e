package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	c.Set(ctx, "departments:list:1", []byte("a"), time.Minute)
	c.Set(ctx, "departments:id:1", []byte("b"), 0)
	c.Set(ctx, "courses:1", []byte("c"), time.Minute)

	data, ok := c.Get(ctx, "departments:list:1")
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), data)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(ctx, "departments:list:1")
	assert.False(t, ok, "expired entry")

	_, ok = c.Get(ctx, "departments:id:1")
	assert.True(t, ok, "no ttl never expires")

	c.DeletePrefix(ctx, "departments:")
	_, ok = c.Get(ctx, "departments:id:1")
	assert.False(t, ok)

	c.Delete(ctx, "courses:1")
	_, ok = c.Get(ctx, "courses:1")
	assert.False(t, ok)
}
