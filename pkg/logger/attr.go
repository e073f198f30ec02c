package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/saaslanding/pkg/sanitizer"
)

// Error returns an empty attribute for a nil error, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func LeadID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("lead_id", id)
}

// Email logs the address with the local part masked.
func Email(address string) slog.Attr {
	return slog.String("email", sanitizer.MaskEmail(address))
}

// Phase is the hero form lifecycle phase.
func Phase(phase string) slog.Attr {
	return slog.String("phase", phase)
}

// Storage is the lead storage backend name.
func Storage(name string) slog.Attr {
	return slog.String("storage", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
