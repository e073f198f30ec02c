package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saaslanding/pkg/statemachine"
)

type phase string
type event string

const (
	idle       phase = "idle"
	submitting phase = "submitting"
	succeeded  phase = "succeeded"

	submit  event = "submit"
	succeed event = "succeed"
	fail    event = "fail"
	reset   event = "reset"
)

func newMachine(opts ...statemachine.Option[phase, event]) *statemachine.Machine[phase, event] {
	base := []statemachine.Option[phase, event]{
		statemachine.WithTransition[phase, event](idle, submit, submitting),
		statemachine.WithTransition[phase, event](submitting, succeed, succeeded),
		statemachine.WithTransition[phase, event](submitting, fail, idle),
		statemachine.WithTransition[phase, event](succeeded, reset, idle),
	}
	return statemachine.New(idle, append(base, opts...)...)
}

func TestMachine_Lifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	m := newMachine()

	require.NoError(t, m.Fire(ctx, submit, nil))
	assert.Equal(t, submitting, m.Current())
	require.NoError(t, m.Fire(ctx, succeed, nil))
	assert.Equal(t, succeeded, m.Current())
	require.NoError(t, m.Fire(ctx, reset, nil))
	assert.Equal(t, idle, m.Current())

	require.NoError(t, m.Fire(ctx, submit, nil))
	require.NoError(t, m.Fire(ctx, fail, nil))
	assert.Equal(t, idle, m.Current())
}

func TestMachine_NoTransition(t *testing.T) {
	t.Parallel()
	m := newMachine()

	err := m.Fire(context.Background(), succeed, nil)
	assert.ErrorIs(t, err, statemachine.ErrNoTransition)
	assert.Equal(t, idle, m.Current())
	assert.False(t, m.CanFire(context.Background(), succeed, nil))
	assert.True(t, m.CanFire(context.Background(), submit, nil))
}

func TestMachine_Guards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onlyAdmins := func(_ context.Context, _ phase, _ event, data any) bool { return data == "admin" }
	newMachine := func() *statemachine.Machine[phase, event] {
		return statemachine.New(idle,
			statemachine.WithTransition(idle, submit, succeeded, statemachine.WithGuard(onlyAdmins)),
			statemachine.WithTransition[phase, event](idle, submit, submitting),
		)
	}

	m := newMachine()
	require.NoError(t, m.Fire(ctx, submit, "admin"))
	assert.Equal(t, succeeded, m.Current())

	m = newMachine()
	require.NoError(t, m.Fire(ctx, submit, "guest"))
	assert.Equal(t, submitting, m.Current())

	blocked := statemachine.New(idle,
		statemachine.WithTransition(idle, submit, submitting,
			statemachine.WithGuard(func(context.Context, phase, event, any) bool { return false })),
	)
	assert.ErrorIs(t, blocked.Fire(ctx, submit, nil), statemachine.ErrTransitionRejected)
}

func TestMachine_Actions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	record := func(_ context.Context, from, to phase, e event, _ any) error {
		seen = append(seen, string(from)+">"+string(to)+":"+string(e))
		return nil
	}
	m := statemachine.New(idle,
		statemachine.WithTransition(idle, submit, submitting, statemachine.WithAction(record)),
		statemachine.WithTransition(submitting, fail, idle,
			statemachine.WithAction(func(context.Context, phase, phase, event, any) error { return errors.New("nope") })),
	)

	require.NoError(t, m.Fire(ctx, submit, nil))
	assert.Equal(t, []string{"idle>submitting:submit"}, seen)

	err := m.Fire(ctx, fail, nil)
	assert.ErrorIs(t, err, statemachine.ErrActionFailed)
	assert.Equal(t, submitting, m.Current())
}

func TestMachine_ConcurrentFireAllowsOneSubmit(t *testing.T) {
	t.Parallel()
	m := newMachine()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		oks int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Fire(context.Background(), submit, nil) == nil {
				mu.Lock()
				oks++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, oks)
}
