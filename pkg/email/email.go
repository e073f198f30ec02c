package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/saaslanding/pkg/validator"
)

var (
	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid email config")
	ErrInvalidParams     = errors.New("invalid email params")
)

// EmailSender delivers one transactional email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

type SendEmailParams struct {
	SendTo  string `json:"send_to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	// BodyHTML is required. BodyText is an optional plain text alternative.
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

func (p SendEmailParams) Validate() error {
	rules := []validator.Rule{
		validator.ValidEmail("send_to", p.SendTo),
		validator.RequiredString("subject", p.Subject),
		validator.RequiredString("body_html", p.BodyHTML),
	}
	if p.ReplyTo != "" {
		rules = append(rules, validator.ValidEmail("reply_to", p.ReplyTo))
	}
	if err := validator.Apply(rules...); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// Config selects the delivery backend. Without a server token messages are
// written to DevOutputDir instead of being sent.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"hello@localhost.dev"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"support@localhost.dev"`
	DevOutputDir         string `env:"EMAIL_DEV_OUTPUT_DIR" envDefault:"tmp/emails"`
}

func (c Config) validate() error {
	err := validator.Apply(
		validator.RequiredString("postmark_server_token", c.PostmarkServerToken),
		validator.ValidEmail("sender_email", c.SenderEmail),
		validator.ValidEmail("support_email", c.SupportEmail),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// NewSender returns a Postmark sender when a server token is configured and a
// DevSender otherwise.
func NewSender(cfg Config) (EmailSender, error) {
	if strings.TrimSpace(cfg.PostmarkServerToken) == "" {
		return NewDevSender(cfg.DevOutputDir), nil
	}
	return NewPostmarkClient(cfg)
}
