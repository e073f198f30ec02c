package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard decides at fire time whether a transition may run.
type Guard[S, E comparable] func(ctx context.Context, from S, event E, data any) bool

// Action runs before the state changes. An error aborts the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]
	Actions []Action[S, E]
}

type key[S, E comparable] struct {
	from  S
	event E
}

// Machine is a concurrency safe finite state machine over comparable state
// and event types, typically string enums.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	current     S
	transitions map[key[S, E]][]Transition[S, E]
}

// New builds a machine in state initial.
func New[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m := &Machine[S, E]{
		current:     initial,
		transitions: make(map[key[S, E]][]Transition[S, E]),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Add registers t. Several transitions may share From and Event; the first
// whose guards all pass is taken.
func (m *Machine[S, E]) Add(t Transition[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key[S, E]{t.From, t.Event}
	m.transitions[k] = append(m.transitions[k], t)
}

// Fire moves the machine along the first eligible transition for event.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.find(ctx, event, data)
	if err != nil {
		return err
	}
	for _, action := range t.Actions {
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			return fmt.Errorf("%w: %w", ErrActionFailed, err)
		}
	}
	m.current = t.To
	return nil
}

// CanFire reports whether Fire would find an eligible transition.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.find(ctx, event, data)
	return err == nil
}

func (m *Machine[S, E]) find(ctx context.Context, event E, data any) (Transition[S, E], error) {
	candidates := m.transitions[key[S, E]{m.current, event}]
	if len(candidates) == 0 {
		return Transition[S, E]{}, fmt.Errorf("%w: from %v on %v", ErrNoTransition, m.current, event)
	}
	for _, t := range candidates {
		if guardsPass(ctx, t.Guards, m.current, event, data) {
			return t, nil
		}
	}
	return Transition[S, E]{}, fmt.Errorf("%w: from %v on %v", ErrTransitionRejected, m.current, event)
}

func guardsPass[S, E comparable](ctx context.Context, guards []Guard[S, E], from S, event E, data any) bool {
	for _, g := range guards {
		if g != nil && !g(ctx, from, event, data) {
			return false
		}
	}
	return true
}
