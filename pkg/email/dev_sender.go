package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
	"unicode"
)

// DevSender stores messages on disk instead of sending them. Each message
// becomes <stamp>_<seq>_<tag>.html, an optional .txt with the plain body, and
// a .json file with the envelope.
type DevSender struct {
	dir string
	seq atomic.Uint64
	now func() time.Time
}

func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir, now: time.Now}
}

type envelope struct {
	SentAt  time.Time `json:"sent_at"`
	SendTo  string    `json:"send_to"`
	ReplyTo string    `json:"reply_to,omitempty"`
	Subject string    `json:"subject"`
	Tag     string    `json:"tag,omitempty"`
}

func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}

	now := d.now()
	label := params.Tag
	if label == "" {
		label = params.Subject
	}
	base := filepath.Join(d.dir, fmt.Sprintf("%s_%03d_%s", now.Format("20060102_150405"), d.seq.Add(1), fileName(label)))

	meta, err := json.MarshalIndent(envelope{
		SentAt:  now.UTC(),
		SendTo:  params.SendTo,
		ReplyTo: params.ReplyTo,
		Subject: params.Subject,
		Tag:     params.Tag,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}

	files := map[string]string{
		".html": params.BodyHTML,
		".json": string(meta),
	}
	if params.BodyText != "" {
		files[".txt"] = params.BodyText
	}
	for ext, content := range files {
		if err := os.WriteFile(base+ext, []byte(content), 0o644); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
		}
	}
	return nil
}

// fileName keeps lowercase letters, digits, dashes and dots. Other runs of
// characters collapse into one underscore.
func fileName(s string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '.'):
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
		if b.Len() >= 64 {
			break
		}
	}
	name := strings.TrimRight(b.String(), "_")
	if name == "" {
		return "email"
	}
	return name
}
