package email

import (
	"context"
	"errors"
	"html"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
)

type captureSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (c *captureSender) SendWithContext(_ context.Context, m *mail.SGMailV3) (*rest.Response, error) {
	c.sent = append(c.sent, m)
	if c.err != nil {
		return nil, c.err
	}
	status := c.status
	if status == 0 {
		status = 202
	}
	return &rest.Response{StatusCode: status}, nil
}

func newTestService(t *testing.T, sender *captureSender) *EmailService {
	t.Helper()
	svc, err := NewEmailServiceWithSender(&EmailConfig{
		FromEmail:   "noreply@lexlucglobal.ng",
		FromName:    "Lexluc Global",
		AdminEmail:  "admin@lexlucglobal.ng",
		CompanyName: "Lexluc Global",
		SiteURL:     "https://lexlucglobal.ng",
	}, sender, logrus.New())
	require.NoError(t, err)
	return svc
}

func TestSendBookingConfirmation(t *testing.T) {
	sender := &captureSender{}
	svc := newTestService(t, sender)

	b := &booking.Booking{
		ReferenceNo:          "LX-20250301-K7QM2P",
		FirstName:            "Ada",
		LastName:             "Obi",
		Email:                "ada@example.com",
		NumberOfParticipants: 2,
		TotalPrice:           1500,
		Status:               booking.StatusPending,
		Tour:                 &catalog.Tour{Title: "Zanzibar Escape"},
	}
	require.NoError(t, svc.SendBookingConfirmation(context.Background(), b))

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "Booking received - Lexluc Global (LX-20250301-K7QM2P)", msg.Subject)
	assert.Equal(t, "ada@example.com", msg.Personalizations[0].To[0].Address)
	body := msg.Content[len(msg.Content)-1].Value
	assert.Contains(t, body, "Zanzibar Escape")
	assert.Contains(t, body, "1500.00")
	assert.Contains(t, body, "https://lexlucglobal.ng/bookings/LX-20250301-K7QM2P")
}

func TestContactNotificationRepliesToSender(t *testing.T) {
	sender := &captureSender{}
	svc := newTestService(t, sender)

	phone := "+234 800 000 0000"
	m := &contact.Message{
		FirstName: "Tunde",
		LastName:  "Bello",
		Email:     "tunde@example.com",
		Phone:     &phone,
		Subject:   "Group tour",
		Message:   "We are 12 people.",
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.SendContactNotification(context.Background(), m))

	msg := sender.sent[0]
	assert.Equal(t, "admin@lexlucglobal.ng", msg.Personalizations[0].To[0].Address)
	assert.Equal(t, "tunde@example.com", msg.ReplyTo.Address)
	assert.Contains(t, html.UnescapeString(msg.Content[len(msg.Content)-1].Value), phone)
}

func TestSendFailures(t *testing.T) {
	m := &contact.Message{Email: "a@example.com", Subject: "Hi"}

	sender := &captureSender{err: errors.New("dial tcp: timeout")}
	assert.Error(t, newTestService(t, sender).SendContactResponse(context.Background(), m))

	sender = &captureSender{status: 401}
	err := newTestService(t, sender).SendContactResponse(context.Background(), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sendgrid responded 401")
}
