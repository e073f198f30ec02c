package lead

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is one captured email address.
type Lead struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Source    string    `json:"source" db:"source"`
	IP        string    `json:"ip" db:"ip"`
	UserAgent string    `json:"user_agent" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Result is the outcome of a persistence call.
type Result struct {
	Success bool  `json:"success"`
	Lead    *Lead `json:"-"`
}

// Storage persists leads. Email is the unique key: CreateLead returns
// ErrDuplicateLead for an address that is already stored.
type Storage interface {
	CreateLead(ctx context.Context, lead Lead) error
	GetLeadByEmail(ctx context.Context, email string) (*Lead, error)
	// ListLeads returns up to limit leads, newest first. limit <= 0 means all.
	ListLeads(ctx context.Context, limit int) ([]Lead, error)
}

type Config struct {
	SalesInbox     string `env:"LEAD_SALES_INBOX"`
	Source         string `env:"LEAD_SOURCE" envDefault:"hero"`
	MaxEmailLength int    `env:"LEAD_MAX_EMAIL_LENGTH" envDefault:"254"`
	ProductName    string `env:"PRODUCT_NAME" envDefault:"AI Agent"`
}

type userAgentKey struct{}

// WithUserAgent stores the submitting client's user agent in ctx.
func WithUserAgent(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, userAgentKey{}, ua)
}

// UserAgentFromContext returns the user agent stored by WithUserAgent.
func UserAgentFromContext(ctx context.Context) string {
	ua, _ := ctx.Value(userAgentKey{}).(string)
	return ua
}
