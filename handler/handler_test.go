package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saaslanding/handler"
	"github.com/dmitrymomot/saaslanding/pkg/binder"
)

type emailRequest struct {
	Email string `json:"email" form:"email"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestWrap(t *testing.T) {
	t.Parallel()

	echo := func(ctx handler.Context, req emailRequest) handler.Response {
		return handler.JSON(req)
	}
	h := handler.Wrap(echo,
		handler.WithBinders(binder.JSON(), binder.Form()),
	)

	t.Run("json body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.c"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"email":"a@b.c"}}`, rec.Body.String())
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("email=x%40y.z"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"email":"x@y.z"}}`, rec.Body.String())
	})

	t.Run("malformed json is bad request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		nilHandler := handler.Wrap(func(handler.Context, emailRequest) handler.Response { return nil })
		rec := httptest.NewRecorder()
		nilHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[emailRequest] {
		return func(next handler.HandlerFunc[emailRequest]) handler.HandlerFunc[emailRequest] {
			return func(ctx handler.Context, req emailRequest) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(handler.Decorate(func(handler.Context, emailRequest) handler.Response {
		order = append(order, "handler")
		return handler.JSON(nil)
	}, mark("outer"), nil, mark("inner")))

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestWrap_CustomErrorHandler(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap(func(handler.Context, emailRequest) handler.Response {
		return handler.JSON(nil)
	},
		handler.WithBinders(func(*http.Request, any) error { return errors.New("boom") }),
		handler.WithErrorHandler(func(ctx handler.Context, err error) {
			got = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	var httpErr handler.HTTPError
	require.ErrorAs(t, got, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		target  string
		want    bool
	}{
		{"datastar header", map[string]string{"Datastar-Request": "true"}, "/", true},
		{"event stream accept", map[string]string{"Accept": "text/html, text/event-stream"}, "/", true},
		{"signals query", nil, "/?datastar=%7B%7D", true},
		{"plain request", map[string]string{"Accept": "text/html"}, "/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDataStar(req))
		})
	}
}

func TestTemplResponses(t *testing.T) {
	t.Parallel()

	t.Run("plain html", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.TemplPartial(text("<p>part</p>"), text("<html>full</html>")).
			Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<html>full</html>", rec.Body.String())
	})

	t.Run("datastar patch", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := httptest.NewRecorder()

		err := handler.TemplPartial(text(`<p id="part">part</p>`), text("<html>full</html>")).Render(rec, req)
		require.NoError(t, err)
		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, `<p id="part">part</p>`)
		assert.NotContains(t, body, "full")
	})

	t.Run("multi plain concatenates", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.TemplMulti(handler.Patch(text("a")), handler.Patch(text("b"))).
			Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, "ab", rec.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.TemplStatus(http.StatusNotFound, text("missing")).
			Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSSE(t *testing.T) {
	t.Parallel()

	t.Run("requires datastar", func(t *testing.T) {
		t.Parallel()
		err := handler.SSE(func(handler.StreamContext) error { return nil }).
			Render(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
		var httpErr handler.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("streams signals and elements", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := httptest.NewRecorder()

		err := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendSignals(map[string]any{"loading": true}); err != nil {
				return err
			}
			return stream.SendMultiple(handler.Patch(text(`<div id="a">a</div>`)))
		}).Render(rec, req)
		require.NoError(t, err)

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"loading":true`)
		assert.Contains(t, body, "datastar-patch-elements")
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
		t.Helper()
		var body handler.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		err := handler.NewValidationError().Add("email", "Please enter a valid email address")
		require.NoError(t, handler.JSONError(err).Render(rec, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"Please enter a valid email address"}, body.Error.Details["email"])
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.JSONError(handler.NewHTTPError(http.StatusConflict, "already_subscribed")).Render(rec, nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "already_subscribed", decode(t, rec).Error.Code)
	})

	t.Run("message override", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		resp := handler.JSONError(
			handler.NewHTTPError(http.StatusConflict, "already_subscribed"),
			handler.WithJSONErrorMessage("This email is already on our list."),
		)
		require.NoError(t, resp.Render(rec, nil))
		assert.Equal(t, "This email is already on our list.", decode(t, rec).Error.Message)
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.JSONError(errors.New("dsn=postgres://secret")).Render(rec, nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	v := handler.NewValidationError()
	assert.True(t, v.IsEmpty())
	v.Add("email", "required").Add("email", "invalid").Add("name", "too long")

	assert.False(t, v.IsEmpty())
	assert.Equal(t, "required", v.First("email"))
	assert.Empty(t, v.First("missing"))
	assert.Equal(t, "email: required, invalid; name: too long", v.Error())
}
