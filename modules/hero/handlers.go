package hero

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/saaslanding/handler"
	"github.com/dmitrymomot/saaslanding/pkg/logger"
	"github.com/dmitrymomot/saaslanding/pkg/validator"
	"github.com/dmitrymomot/saaslanding/svc/lead"
	"github.com/dmitrymomot/saaslanding/views"
)

func (s *Service) index(_ handler.Context, _ struct{}) handler.Response {
	return handler.TemplStatus(http.StatusOK, views.Page(s.page(State{Phase: PhaseIdle})))
}

// subscribe runs one submission. DataStar requests get every state change
// streamed and stay open until the succeeded state resets or the client
// leaves. Plain form posts get the resulting page.
func (s *Service) subscribe(ctx handler.Context, req State) handler.Response {
	key := ctx.Request().URL.Query().Get("key")

	if !handler.IsDataStar(ctx.Request()) {
		form := s.newForm(State{Email: req.Email})
		defer form.Close()

		status := http.StatusOK
		if err := trigger(ctx, form, key); errors.Is(err, ErrInvalidEmail) {
			status = http.StatusUnprocessableEntity
		}
		return handler.TemplStatus(status, views.Page(s.page(form.State())))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		form := s.newForm(req,
			WithOnChange(func(st State) {
				if err := s.push(stream, st); err != nil {
					s.log.WarnContext(stream, "push form state", logger.Error(err), logger.Phase(string(st.Phase)))
				}
			}),
			WithOnReset(func(st State) {
				if err := s.pushReset(stream, st); err != nil {
					s.log.WarnContext(stream, "push form reset", logger.Error(err))
				}
			}),
		)
		defer form.Close()

		if err := trigger(stream, form, key); err != nil {
			if errors.Is(err, ErrSubmitDisabled) {
				return s.push(stream, form.State())
			}
			return nil
		}
		if form.State().Phase != PhaseSucceeded {
			return nil
		}

		select {
		case <-form.Done():
		case <-stream.Done():
		}
		return nil
	})
}

func trigger(ctx context.Context, form *Form, key string) error {
	if key != "" {
		return form.KeyDown(ctx, key)
	}
	return form.Submit(ctx)
}

func (s *Service) push(stream handler.StreamContext, st State) error {
	if err := stream.SendSignals(st); err != nil {
		return err
	}
	return stream.SendMultiple(
		handler.Patch(views.EmailForm(st.formParams(s.content.EmailPlaceholder))),
		handler.Patch(views.Snackbar(st.snackbarParams())),
	)
}

// pushReset leaves the notification signals and the snackbar alone: the
// visitor may have dismissed it during the succeeded window.
func (s *Service) pushReset(stream handler.StreamContext, st State) error {
	if err := stream.SendSignals(map[string]any{
		"email": st.Email,
		"phase": st.Phase,
	}); err != nil {
		return err
	}
	return stream.SendComponent(views.EmailForm(st.formParams(s.content.EmailPlaceholder)))
}

func (s *Service) dismiss(ctx handler.Context, req State) handler.Response {
	form := s.newForm(req)
	defer form.Close()
	form.Dismiss()
	st := form.State()

	if !handler.IsDataStar(ctx.Request()) {
		return handler.TemplStatus(http.StatusOK, views.Page(s.page(st)))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		if err := stream.SendSignals(map[string]any{
			"notification": map[string]any{"visible": false},
		}); err != nil {
			return err
		}
		return stream.SendComponent(views.Snackbar(st.snackbarParams()))
	})
}

type leadRequest struct {
	Email string `json:"email" form:"email"`
}

type leadResponse struct {
	Success bool `json:"success"`
}

// createLead is the JSON form of the persistence call.
func (s *Service) createLead(ctx handler.Context, req leadRequest) handler.Response {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return handler.JSONError(handler.NewValidationError().Add("email", MessageInvalidEmail))
	}

	res, err := s.saver.SaveEmail(ctx, req.Email)
	switch {
	case errors.Is(err, lead.ErrInvalidEmail):
		return handler.JSONError(invalidLead(err), handler.WithJSONErrorMessage(MessageInvalidEmail))
	case err != nil:
		if msg, ok := lead.PublicMessage(err); ok {
			key := "rejected"
			if errors.Is(err, lead.ErrAlreadySubscribed) {
				key = "already_subscribed"
			}
			return handler.JSONError(
				handler.HTTPError{Code: http.StatusConflict, Key: key, Err: err},
				handler.WithJSONErrorMessage(msg),
			)
		}
		s.log.ErrorContext(ctx, "create lead", logger.Error(err))
		return handler.JSONError(err, handler.WithJSONErrorMessage(MessageSaveFailed))
	case res == nil || !res.Success:
		return handler.JSONError(ErrSaveFailed, handler.WithJSONErrorMessage(MessageSaveFailed))
	}

	return handler.JSON(leadResponse{Success: true})
}

// invalidLead exposes the rules the lead service rejected the address with.
func invalidLead(err error) handler.ValidationError {
	verr := handler.NewValidationError()
	for field, msgs := range validator.ExtractValidationErrors(err).Map() {
		for _, msg := range msgs {
			verr.Add(field, msg)
		}
	}
	if verr.IsEmpty() {
		verr.Add("email", MessageInvalidEmail)
	}
	return verr
}

func jsonErrorHandler(log *slog.Logger) handler.ErrorHandler {
	return func(ctx handler.Context, err error) {
		if rerr := handler.JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); rerr != nil {
			log.ErrorContext(ctx, "render json error", logger.Error(rerr))
		}
	}
}
