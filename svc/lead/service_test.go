package lead_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saaslanding/pkg/clientip"
	"github.com/dmitrymomot/saaslanding/pkg/email"
	"github.com/dmitrymomot/saaslanding/svc/lead"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

type failingStorage struct {
	*lead.MemoryStorage
	err error
}

func (s failingStorage) CreateLead(context.Context, lead.Lead) error { return s.err }

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, storage lead.Storage, opts ...lead.ServiceOption) *lead.Service {
	t.Helper()
	cfg := lead.Config{
		SalesInbox:     "sales@example.com",
		Source:         "hero",
		MaxEmailLength: 254,
		ProductName:    "AI Agent",
	}
	opts = append([]lead.ServiceOption{lead.WithClock(func() time.Time { return fixedNow })}, opts...)
	return lead.NewService(cfg, storage, opts...)
}

func TestSaveEmail_Success(t *testing.T) {
	t.Parallel()

	storage := lead.NewMemoryStorage()
	sender := &mockSender{}
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
		return p.SendTo == "jane@example.com" && p.Tag == "lead-confirmation"
	})).Return(nil).Once()
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
		return p.SendTo == "sales@example.com" && p.Tag == "lead-alert" && p.ReplyTo == "jane@example.com"
	})).Return(nil).Once()

	svc := newService(t, storage, lead.WithMailer(sender))

	ctx := clientip.SetIPToContext(context.Background(), "203.0.113.7")
	ctx = lead.WithUserAgent(ctx, "Mozilla/5.0")

	res, err := svc.SaveEmail(ctx, "  Jane@Example.COM ")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Success)

	stored, err := storage.GetLeadByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "hero", stored.Source)
	assert.Equal(t, "203.0.113.7", stored.IP)
	assert.Equal(t, "Mozilla/5.0", stored.UserAgent)
	assert.Equal(t, fixedNow, stored.CreatedAt)
	assert.Equal(t, res.Lead.ID, stored.ID)

	sender.AssertExpectations(t)
}

func TestSaveEmail_InvalidEmail(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "plainaddress", "jane@", "@example.com", "jane@localhost"} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			storage := lead.NewMemoryStorage()
			svc := newService(t, storage)

			res, err := svc.SaveEmail(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, lead.ErrInvalidEmail)

			msg, ok := lead.PublicMessage(err)
			assert.True(t, ok)
			assert.Equal(t, "Please enter a valid email address", msg)

			leads, err := storage.ListLeads(context.Background(), 0)
			require.NoError(t, err)
			assert.Empty(t, leads)
		})
	}
}

func TestSaveEmail_TooLong(t *testing.T) {
	t.Parallel()

	svc := lead.NewService(lead.Config{MaxEmailLength: 16}, lead.NewMemoryStorage())
	_, err := svc.SaveEmail(context.Background(), "someone.long@example.com")
	assert.ErrorIs(t, err, lead.ErrInvalidEmail)
}

func TestSaveEmail_Duplicate(t *testing.T) {
	t.Parallel()

	svc := newService(t, lead.NewMemoryStorage())

	_, err := svc.SaveEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)

	res, err := svc.SaveEmail(context.Background(), "JANE@example.com")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, lead.ErrAlreadySubscribed)
	assert.ErrorIs(t, err, lead.ErrDuplicateLead)

	msg, ok := lead.PublicMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "This email is already on our list.", msg)
}

func TestSaveEmail_DuplicateOnInsert(t *testing.T) {
	t.Parallel()

	storage := failingStorage{MemoryStorage: lead.NewMemoryStorage(), err: lead.ErrDuplicateLead}
	svc := newService(t, storage)

	_, err := svc.SaveEmail(context.Background(), "jane@example.com")
	assert.ErrorIs(t, err, lead.ErrAlreadySubscribed)
}

func TestSaveEmail_StorageFailureHasNoPublicMessage(t *testing.T) {
	t.Parallel()

	storage := failingStorage{MemoryStorage: lead.NewMemoryStorage(), err: errors.New("connection reset")}
	svc := newService(t, storage)

	res, err := svc.SaveEmail(context.Background(), "jane@example.com")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, lead.ErrFailedToSaveLead)

	_, ok := lead.PublicMessage(err)
	assert.False(t, ok)
}

func TestSaveEmail_NotificationFailureIsNotSurfaced(t *testing.T) {
	t.Parallel()

	storage := lead.NewMemoryStorage()
	sender := &mockSender{}
	sender.On("SendEmail", mock.Anything, mock.Anything).Return(errors.New("postmark down"))

	svc := newService(t, storage, lead.WithMailer(sender))

	res, err := svc.SaveEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.True(t, res.Success)

	_, err = storage.GetLeadByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	sender.AssertNumberOfCalls(t, "SendEmail", 2)
}

func TestNotifier_SkipsSalesAlertWithoutInbox(t *testing.T) {
	t.Parallel()

	sender := &mockSender{}
	sender.On("SendEmail", mock.Anything, mock.Anything).Return(nil)

	n := lead.NewNotifier(sender, lead.Config{ProductName: "AI Agent"})
	err := n.Notify(context.Background(), lead.Lead{Email: "jane@example.com", CreatedAt: fixedNow})
	require.NoError(t, err)

	sender.AssertNumberOfCalls(t, "SendEmail", 1)
	params := sender.Calls[0].Arguments.Get(1).(email.SendEmailParams)
	assert.Equal(t, "Your AI Agent request", params.Subject)
	assert.Contains(t, params.BodyHTML, "Thanks for your interest in AI Agent!")
	assert.Empty(t, params.ReplyTo)
	assert.NotEmpty(t, params.BodyText)
}

func TestListLeads(t *testing.T) {
	t.Parallel()

	now := fixedNow
	svc := lead.NewService(lead.Config{}, lead.NewMemoryStorage(), lead.WithClock(func() time.Time {
		now = now.Add(time.Minute)
		return now
	}))
	for _, addr := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.SaveEmail(context.Background(), addr)
		require.NoError(t, err)
	}

	all, err := svc.ListLeads(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c@example.com", all[0].Email)
	assert.Equal(t, "a@example.com", all[2].Email)

	two, err := svc.ListLeads(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "b@example.com", two[1].Email)
}

func TestNewServicePanicsOnNilStorage(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { lead.NewService(lead.Config{}, nil) })
}
