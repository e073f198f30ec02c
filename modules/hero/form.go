package hero

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/saaslanding/pkg/logger"
	"github.com/dmitrymomot/saaslanding/pkg/statemachine"
	"github.com/dmitrymomot/saaslanding/svc/lead"
)

// DefaultResetDelay is how long the succeeded state is displayed.
const DefaultResetDelay = 3 * time.Second

// Saver is the persistence call. The human-readable message of a rejection
// is the PublicMessage() of an error in its chain, as lead.PublicError
// provides. Errors without one are shown as MessageSaveFailed.
type Saver interface {
	SaveEmail(ctx context.Context, email string) (*lead.Result, error)
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, email string) (*lead.Result, error)

func (f SaverFunc) SaveEmail(ctx context.Context, email string) (*lead.Result, error) {
	return f(ctx, email)
}

type event string

const (
	eventSubmit  event = "submit"
	eventSucceed event = "succeed"
	eventFail    event = "fail"
	eventReset   event = "reset"
)

func newLifecycle(initial Phase) *statemachine.Machine[Phase, event] {
	return statemachine.New(initial,
		statemachine.WithTransition(PhaseIdle, eventSubmit, PhaseSubmitting),
		statemachine.WithTransition(PhaseSubmitting, eventSucceed, PhaseSucceeded),
		statemachine.WithTransition(PhaseSubmitting, eventFail, PhaseIdle),
		statemachine.WithTransition(PhaseSucceeded, eventReset, PhaseIdle),
	)
}

// Form is the email capture controller. It is safe for concurrent use; a
// second Submit while one is in flight is rejected with ErrSubmitDisabled.
type Form struct {
	saver      Saver
	resetDelay time.Duration
	log        *slog.Logger
	onChange   func(State)
	onReset    func(State)

	mu        sync.Mutex
	state     State
	lifecycle *statemachine.Machine[Phase, event]
	timer     *time.Timer
	closed    bool
	done      chan struct{}
	doneOnce  sync.Once
}

type FormOption func(*Form)

// WithResetDelay sets how long the succeeded state lasts. Non-positive
// values keep the default.
func WithResetDelay(d time.Duration) FormOption {
	return func(f *Form) {
		if d > 0 {
			f.resetDelay = d
		}
	}
}

func WithLogger(l *slog.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithOnChange registers fn to receive every state change. fn runs while the
// form is locked and must not call back into the form.
func WithOnChange(fn func(State)) FormOption {
	return func(f *Form) {
		f.onChange = fn
	}
}

// WithOnReset registers fn to receive the state when the succeeded window
// ends, instead of the change callback. The reset only clears Email and moves
// Phase to idle, so fn should publish just those fields. fn runs while the
// form is locked.
func WithOnReset(fn func(State)) FormOption {
	return func(f *Form) {
		f.onReset = fn
	}
}

// WithInitialState restores a form from client state. An unknown phase is
// treated as idle.
func WithInitialState(s State) FormOption {
	return func(f *Form) {
		if !s.Phase.valid() {
			s.Phase = PhaseIdle
		}
		f.state = s
	}
}

// NewForm panics on a nil saver.
func NewForm(saver Saver, opts ...FormOption) *Form {
	if saver == nil {
		panic("hero: saver cannot be nil")
	}
	f := &Form{
		saver:      saver,
		resetDelay: DefaultResetDelay,
		log:        logger.Nop(),
		state:      State{Phase: PhaseIdle},
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.lifecycle = newLifecycle(f.state.Phase)
	return f
}

// State returns a snapshot of the form state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Done is closed when the pending reset has fired or the form is closed.
func (f *Form) Done() <-chan struct{} {
	return f.done
}

// SetEmail replaces the input text as is.
func (f *Form) SetEmail(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.state.Email = text
	f.changed()
}

// Submit validates the email and, when valid, makes exactly one persistence
// call with the untrimmed text.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if !f.lifecycle.CanFire(ctx, eventSubmit, nil) {
		f.mu.Unlock()
		return ErrSubmitDisabled
	}

	email := f.state.Email
	if email == "" || !strings.Contains(email, "@") {
		f.state.Notification = errorNotification(MessageInvalidEmail)
		f.changed()
		f.mu.Unlock()
		return ErrInvalidEmail
	}

	if err := f.fire(ctx, eventSubmit); err != nil {
		f.mu.Unlock()
		return ErrSubmitDisabled
	}
	f.state.Notification = Notification{}
	f.changed()
	f.mu.Unlock()

	start := time.Now()
	res, saveErr := f.saver.SaveEmail(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}

	log := f.log.With(logger.Email(email), logger.Duration(time.Since(start)))

	switch {
	case saveErr != nil:
		msg, ok := lead.PublicMessage(saveErr)
		if !ok {
			msg = MessageSaveFailed
		}
		log.WarnContext(ctx, "email submission failed", logger.Error(saveErr))
		f.failLocked(ctx, msg)
		return fmt.Errorf("%w: %w", ErrSaveFailed, saveErr)

	case res == nil || !res.Success:
		log.WarnContext(ctx, "email submission not confirmed")
		f.failLocked(ctx, MessageSaveFailed)
		return ErrSaveFailed
	}

	if err := f.fire(ctx, eventSucceed); err != nil {
		return err
	}
	f.state.Notification = Notification{Message: MessageSucceeded, Kind: NotificationSuccess, Visible: true}
	f.timer = time.AfterFunc(f.resetDelay, f.reset)
	log.InfoContext(ctx, "email submitted")
	f.changed()
	return nil
}

// KeyDown submits on "Enter" and ignores every other key.
func (f *Form) KeyDown(ctx context.Context, key string) error {
	if key != "Enter" {
		return nil
	}
	return f.Submit(ctx)
}

// Dismiss hides the notification.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || !f.state.Notification.Visible {
		return
	}
	f.state.Notification.Visible = false
	f.changed()
}

// Close cancels a pending reset. Later calls to Submit return ErrClosed and
// other mutations are ignored.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
	}
	f.closeDone()
}

func (f *Form) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	if err := f.fire(context.Background(), eventReset); err != nil {
		f.log.Error("reset form", logger.Error(err))
		return
	}
	f.state.Email = ""
	if f.onReset != nil {
		f.onReset(f.state)
	} else {
		f.changed()
	}
	f.closeDone()
}

func (f *Form) failLocked(ctx context.Context, msg string) {
	if err := f.fire(ctx, eventFail); err != nil {
		f.log.ErrorContext(ctx, "fail transition", logger.Error(err))
	}
	f.state.Notification = errorNotification(msg)
	f.changed()
}

// fire moves the lifecycle and mirrors the new phase into the state.
func (f *Form) fire(ctx context.Context, ev event) error {
	if err := f.lifecycle.Fire(ctx, ev, nil); err != nil {
		return err
	}
	f.state.Phase = f.lifecycle.Current()
	return nil
}

func (f *Form) changed() {
	if f.onChange != nil {
		f.onChange(f.state)
	}
}

func (f *Form) closeDone() {
	f.doneOnce.Do(func() { close(f.done) })
}
