package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mocustoms/railway-ledger/internal/platform/cache"
)

func TestGetOrLoadCachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	c := cache.NewReference[int](8, time.Minute)

	calls := 0
	loader := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	v, err := c.GetOrLoad(ctx, "k", loader)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = c.GetOrLoad(ctx, "k", loader)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls, "second read within TTL must not reload")
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	c := cache.NewReference[string](8, time.Minute)

	calls := 0
	failing := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("backend down")
		}
		return "ok", nil
	}

	_, err := c.GetOrLoad(ctx, "k", failing)
	assert.Error(t, err)

	v, err := c.GetOrLoad(ctx, "k", failing)
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestInvalidateForcesReload(t *testing.T) {
	ctx := context.Background()
	c := cache.NewReference[int](8, time.Minute)

	calls := 0
	loader := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, _ := c.GetOrLoad(ctx, "k", loader)
	assert.Equal(t, 1, v)

	c.Invalidate("k")

	v, _ = c.GetOrLoad(ctx, "k", loader)
	assert.Equal(t, 2, v)
}
