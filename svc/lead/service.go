package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/saaslanding/pkg/clientip"
	"github.com/dmitrymomot/saaslanding/pkg/email"
	"github.com/dmitrymomot/saaslanding/pkg/logger"
	"github.com/dmitrymomot/saaslanding/pkg/sanitizer"
	"github.com/dmitrymomot/saaslanding/pkg/validator"
)

// Service is the persistence call behind the hero form.
type Service struct {
	cfg      Config
	storage  Storage
	notifier *Notifier
	log      *slog.Logger
	now      func() time.Time
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMailer enables confirmation and sales notifications.
func WithMailer(sender email.EmailSender) ServiceOption {
	return func(s *Service) {
		if sender != nil {
			s.notifier = NewNotifier(sender, s.cfg)
		}
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService panics on a nil storage.
func NewService(cfg Config, storage Storage, opts ...ServiceOption) *Service {
	if storage == nil {
		panic("lead: storage cannot be nil")
	}
	if cfg.MaxEmailLength <= 0 {
		cfg.MaxEmailLength = 254
	}
	s := &Service{
		cfg:     cfg,
		storage: storage,
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("lead"))
	return s
}

// SaveEmail stores the address as a new lead and sends notifications.
// Notification failures are logged only: the lead is already stored.
func (s *Service) SaveEmail(ctx context.Context, address string) (*Result, error) {
	address = sanitizer.NormalizeEmail(address)

	if err := validator.Apply(
		validator.RequiredString("email", address),
		validator.MaxLenString("email", address, s.cfg.MaxEmailLength),
		validator.ValidEmail("email", address),
	); err != nil {
		return nil, errors.Join(ErrInvalidEmail, err)
	}

	existing, err := s.storage.GetLeadByEmail(ctx, address)
	switch {
	case err == nil && existing != nil:
		s.log.InfoContext(ctx, "lead already captured", logger.Email(address), logger.LeadID(existing.ID))
		return nil, ErrAlreadySubscribed
	case err != nil && !errors.Is(err, ErrLeadNotFound):
		return nil, errors.Join(ErrFailedToSaveLead, err)
	}

	l := Lead{
		ID:        uuid.New(),
		Email:     address,
		Source:    s.cfg.Source,
		IP:        clientip.GetIPFromContext(ctx),
		UserAgent: sanitizer.MaxLength(sanitizer.SingleLine(UserAgentFromContext(ctx)), 512),
		CreatedAt: s.now().UTC(),
	}
	if err := s.storage.CreateLead(ctx, l); err != nil {
		if errors.Is(err, ErrDuplicateLead) {
			return nil, ErrAlreadySubscribed
		}
		return nil, errors.Join(ErrFailedToSaveLead, err)
	}

	s.log.InfoContext(ctx, "lead captured",
		logger.LeadID(l.ID),
		logger.Email(l.Email),
		slog.String("source", l.Source),
	)

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, l); err != nil {
			s.log.ErrorContext(ctx, "lead notifications failed",
				logger.LeadID(l.ID),
				logger.Error(err),
			)
		}
	}

	return &Result{Success: true, Lead: &l}, nil
}

// ListLeads returns stored leads, newest first.
func (s *Service) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	leads, err := s.storage.ListLeads(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadLeads, err)
	}
	return leads, nil
}
