package lead

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dmitrymomot/saaslanding/pkg/async"
	"github.com/dmitrymomot/saaslanding/pkg/email"
	"github.com/dmitrymomot/saaslanding/pkg/sanitizer"
)

// Notifier sends the lead confirmation and the sales alert concurrently.
type Notifier struct {
	sender email.EmailSender
	cfg    Config
}

func NewNotifier(sender email.EmailSender, cfg Config) *Notifier {
	return &Notifier{sender: sender, cfg: cfg}
}

// Notify waits for every message and joins their errors.
func (n *Notifier) Notify(ctx context.Context, l Lead) error {
	messages := make([]email.SendEmailParams, 0, 2)

	confirmation, err := n.confirmation(l)
	if err != nil {
		return errors.Join(ErrNotifyFailed, err)
	}
	messages = append(messages, confirmation)

	if n.cfg.SalesInbox != "" {
		alert, err := n.salesAlert(l)
		if err != nil {
			return errors.Join(ErrNotifyFailed, err)
		}
		messages = append(messages, alert)
	}

	futures := make([]*async.Future[struct{}], 0, len(messages))
	for _, msg := range messages {
		futures = append(futures, async.Async(ctx, msg, n.send))
	}
	if _, err := async.WaitAll(ctx, futures...); err != nil {
		return errors.Join(ErrNotifyFailed, err)
	}
	return nil
}

func (n *Notifier) send(ctx context.Context, params email.SendEmailParams) (struct{}, error) {
	return struct{}{}, n.sender.SendEmail(ctx, params)
}

func (n *Notifier) confirmation(l Lead) (email.SendEmailParams, error) {
	body, err := renderEmail(
		h.H1(g.Textf("Thanks for your interest in %s!", n.cfg.ProductName)),
		h.P(g.Text("We received your request and our team will contact you shortly.")),
		h.P(g.Text("If you did not request this, you can ignore this message.")),
	)
	if err != nil {
		return email.SendEmailParams{}, err
	}
	return email.SendEmailParams{
		SendTo:   l.Email,
		Subject:  fmt.Sprintf("Your %s request", n.cfg.ProductName),
		BodyHTML: body,
		BodyText: fmt.Sprintf("Thanks for your interest in %s! Our team will contact you shortly.", n.cfg.ProductName),
		Tag:      "lead-confirmation",
	}, nil
}

func (n *Notifier) salesAlert(l Lead) (email.SendEmailParams, error) {
	body, err := renderEmail(
		h.H1(g.Text("New lead captured")),
		h.Table(
			row("Email", l.Email),
			row("Domain", sanitizer.ExtractEmailDomain(l.Email)),
			row("Source", l.Source),
			row("IP", l.IP),
			row("User agent", l.UserAgent),
			row("Captured at", l.CreatedAt.Format("2006-01-02 15:04:05 MST")),
		),
	)
	if err != nil {
		return email.SendEmailParams{}, err
	}
	return email.SendEmailParams{
		SendTo:   n.cfg.SalesInbox,
		ReplyTo:  l.Email,
		Subject:  "New lead: " + l.Email,
		BodyHTML: body,
		BodyText: fmt.Sprintf("New lead %s from %s at %s", l.Email, l.Source, l.CreatedAt.Format(time.RFC3339)),
		Tag:      "lead-alert",
	}, nil
}

func row(label, value string) g.Node {
	return h.Tr(
		h.Th(h.Style("text-align:left;padding-right:12px"), g.Text(label)),
		h.Td(g.Text(value)),
	)
}

func renderEmail(children ...g.Node) (string, error) {
	var buf bytes.Buffer
	doc := h.HTML(
		h.Head(h.Meta(h.Charset("utf-8"))),
		h.Body(h.Style("font-family:sans-serif"), g.Group(children)),
	)
	if err := doc.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
