package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedis(rdb), mr
}

func TestRedis_Exclusive(t *testing.T) {
	ctx := context.Background()
	locker, mr := newRedis(t)

	lease, err := locker.Obtain(ctx, "jobs:reconcile", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:jobs:reconcile"))

	_, err = locker.Obtain(ctx, "jobs:reconcile", time.Minute)
	assert.ErrorIs(t, err, ErrNotObtained)

	other, err := locker.Obtain(ctx, "jobs:quota-reset", time.Minute)
	require.NoError(t, err)
	require.NoError(t, other.Release(ctx))

	require.NoError(t, lease.Release(ctx))
	again, err := locker.Obtain(ctx, "jobs:reconcile", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestRedis_Expires(t *testing.T) {
	ctx := context.Background()
	locker, mr := newRedis(t)

	_, err := locker.Obtain(ctx, "jobs:reconcile", time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	lease, err := locker.Obtain(ctx, "jobs:reconcile", time.Second)
	require.NoError(t, err)
	require.NoError(t, lease.Release(ctx))
}

func TestRedis_Refresh(t *testing.T) {
	ctx := context.Background()
	locker, mr := newRedis(t)

	lease, err := locker.Obtain(ctx, "jobs:reconcile", time.Second)
	require.NoError(t, err)
	mr.FastForward(800 * time.Millisecond)
	require.NoError(t, lease.Refresh(ctx, time.Second))
	mr.FastForward(800 * time.Millisecond)

	_, err = locker.Obtain(ctx, "jobs:reconcile", time.Second)
	assert.ErrorIs(t, err, ErrNotObtained)

	mr.FastForward(2 * time.Second)
	assert.ErrorIs(t, lease.Refresh(ctx, time.Second), ErrNotObtained)
}

func TestRedis_ServerDown(t *testing.T) {
	locker, mr := newRedis(t)
	mr.Close()

	_, err := locker.Obtain(context.Background(), "jobs:reconcile", time.Second)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotObtained)
}

func TestLocal(t *testing.T) {
	ctx := context.Background()
	locker := NewLocal()

	lease, err := locker.Obtain(ctx, "jobs:reconcile", time.Minute)
	require.NoError(t, err)
	_, err = locker.Obtain(ctx, "jobs:reconcile", time.Minute)
	assert.ErrorIs(t, err, ErrNotObtained)

	require.NoError(t, lease.Release(ctx))
	lease, err = locker.Obtain(ctx, "jobs:reconcile", time.Minute)
	require.NoError(t, err)
	require.NoError(t, lease.Release(ctx))

	_, err = locker.Obtain(ctx, "short", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = locker.Obtain(ctx, "short", time.Minute)
	assert.NoError(t, err)
}

func TestLocal_Refresh(t *testing.T) {
	ctx := context.Background()
	locker := NewLocal()

	lease, err := locker.Obtain(ctx, "jobs:reconcile", 20*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, lease.Refresh(ctx, time.Minute))
	time.Sleep(20 * time.Millisecond)

	_, err = locker.Obtain(ctx, "jobs:reconcile", time.Minute)
	assert.ErrorIs(t, err, ErrNotObtained)

	require.NoError(t, lease.Release(ctx))
	assert.ErrorIs(t, lease.Refresh(ctx, time.Minute), ErrNotObtained)

	expired, err := locker.Obtain(ctx, "short", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	assert.ErrorIs(t, expired.Refresh(ctx, time.Minute), ErrNotObtained)
}
