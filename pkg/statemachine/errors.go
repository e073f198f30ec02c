package statemachine

import "errors"

var (
	// ErrNoTransition means no transition is defined for the current state and event.
	ErrNoTransition = errors.New("no transition available")
	// ErrTransitionRejected means transitions exist but every one was blocked by a guard.
	ErrTransitionRejected = errors.New("transition rejected by guards")
	ErrActionFailed       = errors.New("transition action failed")
)
