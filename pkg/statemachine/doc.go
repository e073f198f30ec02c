// Package statemachine implements a small generic finite state machine.
//
//	type phase string
//	type event string
//
//	m := statemachine.New[phase, event]("idle",
//		statemachine.WithTransition[phase, event]("idle", "submit", "submitting"),
//		statemachine.WithTransition[phase, event]("submitting", "succeed", "succeeded"),
//	)
//	err := m.Fire(ctx, "submit", nil)
//
// Guards choose between transitions that share a source state and event.
// Actions run under the machine lock before the state changes, so they must
// not call back into the same machine.
package statemachine
