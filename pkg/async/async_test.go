package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saaslanding/pkg/async"
)

func double(_ context.Context, n int) (int, error) { return n * 2, nil }

func TestAsync_Await(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 21, double)
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	select {
	case <-f.Done():
	default:
		t.Fatal("future should be done after Await")
	}
}

func TestAsync_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	f := async.Async(ctx, 1, func(context.Context, int) (int, error) {
		called = true
		return 1, nil
	})
	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAsync_AwaitTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 0, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAsync_Panic(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		panic("boom")
	})
	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, async.ErrPanic)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	errA := errors.New("a failed")
	errC := errors.New("c failed")
	fail := func(err error) func(context.Context, int) (int, error) {
		return func(context.Context, int) (int, error) { return 0, err }
	}

	ctx := context.Background()
	results, err := async.WaitAll(ctx,
		async.Async(ctx, 0, fail(errA)),
		async.Async(ctx, 5, double),
		async.Async(ctx, 0, fail(errC)),
	)
	assert.Equal(t, []int{0, 10, 0}, results)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)

	results, err = async.WaitAll(ctx, async.Async(ctx, 1, double), async.Async(ctx, 2, double))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, results)
}
