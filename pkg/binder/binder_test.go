package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saaslanding/pkg/binder"
)

type leadForm struct {
	Email   string   `json:"email" form:"email"`
	Consent bool     `json:"consent" form:"consent"`
	Count   *int     `json:"count" form:"count"`
	Tags    []string `json:"tags" form:"tag"`
	Secret  string   `json:"-" form:"-"`
}

func request(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		err := binder.JSON()(request(`{"email":"a@b.c","consent":true,"count":2}`, "application/json; charset=utf-8"), &v)
		require.NoError(t, err)
		assert.Equal(t, "a@b.c", v.Email)
		assert.True(t, v.Consent)
		require.NotNil(t, v.Count)
		assert.Equal(t, 2, *v.Count)
	})

	t.Run("other content type is not applicable", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		assert.ErrorIs(t, binder.JSON()(request("email=a", "application/x-www-form-urlencoded"), &v), binder.ErrBinderNotApplicable)
		assert.ErrorIs(t, binder.JSON()(request("{}", ""), &v), binder.ErrBinderNotApplicable)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		err := binder.JSON()(request(`{"email":"a@b.c","admin":true}`, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		err := binder.JSON()(request(`{"email":"a@b.c"}{"email":"x"}`, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		err := binder.JSON()(request("", "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		big := `{"email":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		err := binder.JSON()(request(big, "application/json"), &v)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		err := binder.Form()(request("email=a%40b.c&consent=on&count=7&tag=x&tag=y&Secret=s", "application/x-www-form-urlencoded"), &v)
		require.NoError(t, err)
		assert.Equal(t, "a@b.c", v.Email)
		assert.True(t, v.Consent)
		require.NotNil(t, v.Count)
		assert.Equal(t, 7, *v.Count)
		assert.Equal(t, []string{"x", "y"}, v.Tags)
		assert.Empty(t, v.Secret)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		err := binder.Form()(request("count=abc", "application/x-www-form-urlencoded"), &v)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})

	t.Run("json is not applicable", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		assert.ErrorIs(t, binder.Form()(request("{}", "application/json"), &v), binder.ErrBinderNotApplicable)
	})

	t.Run("non struct target", func(t *testing.T) {
		t.Parallel()
		var s string
		err := binder.Form()(request("email=a", "application/x-www-form-urlencoded"), &s)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})
}

func TestSignals(t *testing.T) {
	t.Parallel()

	t.Run("reads body signals", func(t *testing.T) {
		t.Parallel()
		req := request(`{"email":"sig@example.com"}`, "application/json")
		req.Header.Set("Datastar-Request", "true")

		var v leadForm
		require.NoError(t, binder.Signals()(req, &v))
		assert.Equal(t, "sig@example.com", v.Email)
	})

	t.Run("reads query signals on GET", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, `/?datastar=%7B%22email%22%3A%22q%40example.com%22%7D`, nil)
		req.Header.Set("Datastar-Request", "true")

		var v leadForm
		require.NoError(t, binder.Signals()(req, &v))
		assert.Equal(t, "q@example.com", v.Email)
	})

	t.Run("plain request is not applicable", func(t *testing.T) {
		t.Parallel()
		var v leadForm
		assert.ErrorIs(t, binder.Signals()(request(`{}`, "application/json"), &v), binder.ErrBinderNotApplicable)
	})
}
