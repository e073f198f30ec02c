package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saaslanding/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestLeadID(t *testing.T) {
	attr := logger.LeadID("lead-1")
	require.Equal(t, "lead_id", attr.Key)
	assert.Equal(t, "lead-1", attr.Value.Any())

	assert.True(t, logger.LeadID(nil).Equal(slog.Attr{}))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john@example.com", "j***@example.com"},
		{"a@example.com", "*@example.com"},
		{"not-an-email", "***"},
		{"", ""},
	}
	for _, tt := range tests {
		attr := logger.Email(tt.in)
		require.Equal(t, "email", attr.Key)
		assert.Equal(t, tt.want, attr.Value.String(), tt.in)
	}
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "req-1", logger.RequestID("req-1").Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestPhaseAndStorage(t *testing.T) {
	assert.Equal(t, "submitting", logger.Phase("submitting").Value.String())
	assert.Equal(t, "postgres", logger.Storage("postgres").Value.String())
}
