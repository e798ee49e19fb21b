package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStore_GetCachesWithinWindow(t *testing.T) {
	store := New(time.Minute)
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "value", nil
	}

	for i := 0; i < 5; i++ {
		value, err := Get(ctx, store, "key", load)
		require.NoError(t, err)
		require.Equal(t, "value", value)
	}

	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestStore_GetRefetchesAfterExpiry(t *testing.T) {
	store := New(10 * time.Millisecond)
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	first, err := Get(ctx, store, "key", load)
	require.NoError(t, err)
	require.Equal(t, 1, first)

	time.Sleep(20 * time.Millisecond)

	second, err := Get(ctx, store, "key", load)
	require.NoError(t, err)
	require.Equal(t, 2, second)
}

func TestStore_Invalidate(t *testing.T) {
	store := New(time.Minute)
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	_, err := Get(ctx, store, "users", load)
	require.NoError(t, err)

	store.Invalidate("users")

	value, err := Get(ctx, store, "users", load)
	require.NoError(t, err)
	require.Equal(t, 2, value)
}

func TestStore_ErrorsAreNotCached(t *testing.T) {
	store := New(time.Minute)
	ctx := context.Background()

	loadErr := errors.New("store is down")
	var calls int32
	load := func(ctx context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return "", loadErr
		}
		return "recovered", nil
	}

	_, err := Get(ctx, store, "key", load)
	require.ErrorIs(t, err, loadErr)

	value, err := Get(ctx, store, "key", load)
	require.NoError(t, err)
	require.Equal(t, "recovered", value)
}

func TestStore_ConcurrentGetsCoalesce(t *testing.T) {
	store := New(time.Minute)
	ctx := context.Background()

	var calls int32
	load := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return "shared", nil
	}

	const readers = 10
	values := make([]string, readers)
	errs := make([]error, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], errs[i] = Get(ctx, store, "key", load)
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, "shared", values[i])
	}

	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store := New(time.Minute)
	ctx := context.Background()

	a, err := Get(ctx, store, UserKey(1), func(ctx context.Context) (string, error) { return "a", nil })
	require.NoError(t, err)
	b, err := Get(ctx, store, UserKey(2), func(ctx context.Context) (string, error) { return "b", nil })
	require.NoError(t, err)

	require.Equal(t, "a", a)
	require.Equal(t, "b", b)
}
