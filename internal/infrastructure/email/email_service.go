package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailConfig holds email service configuration
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	AdminEmail     string
	CompanyName    string
	SiteURL        string
}

// Sender delivers a prepared message. *sendgrid.Client satisfies it.
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// EmailService implements the EmailService interface
type EmailService struct {
	config    *EmailConfig
	logger    *logrus.Logger
	client    Sender
	templates *template.Template
}

// NewEmailService creates a SendGrid backed email service
func NewEmailService(config *EmailConfig, logger *logrus.Logger) (ports.EmailService, error) {
	return NewEmailServiceWithSender(config, sendgrid.NewSendClient(config.SendGridAPIKey), logger)
}

// NewEmailServiceWithSender is NewEmailService with an explicit transport.
func NewEmailServiceWithSender(config *EmailConfig, client Sender, logger *logrus.Logger) (*EmailService, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return &EmailService{
		config:    config,
		logger:    logger,
		client:    client,
		templates: templates,
	}, nil
}

// sendEmail sends an email using SendGrid
func (e *EmailService) sendEmail(ctx context.Context, toName, to, replyTo, subject, htmlContent string) error {
	from := mail.NewEmail(e.config.FromName, e.config.FromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail(toName, to), "", htmlContent)
	if replyTo != "" {
		message.SetReplyTo(mail.NewEmail("", replyTo))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).WithError(err).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"to":          to,
		"subject":     subject,
		"status_code": response.StatusCode,
	}).Info("Email sent successfully")

	return nil
}

// renderTemplate renders an email template with the provided data
func (e *EmailService) renderTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// BookingEmailData holds data for the booking confirmation template
type BookingEmailData struct {
	CompanyName  string
	Name         string
	TourTitle    string
	ReferenceNo  string
	Participants int
	TotalPrice   float64
	Status       booking.Status
	LookupURL    string
}

// ContactEmailData holds data for both contact templates
type ContactEmailData struct {
	CompanyName string
	Name        string
	Email       string
	Phone       string
	Company     string
	Subject     string
	Message     string
	Response    string
	SentAt      string
}

func (e *EmailService) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	data := BookingEmailData{
		CompanyName:  e.config.CompanyName,
		Name:         b.FullName(),
		ReferenceNo:  b.ReferenceNo,
		Participants: b.NumberOfParticipants,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		LookupURL:    fmt.Sprintf("%s/bookings/%s", e.config.SiteURL, url.PathEscape(b.ReferenceNo)),
	}
	if b.Tour != nil {
		data.TourTitle = b.Tour.Title
	}

	html, err := e.renderTemplate("booking_confirmation.html", data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Booking received - %s (%s)", e.config.CompanyName, b.ReferenceNo)
	return e.sendEmail(ctx, b.FullName(), b.Email, "", subject, html)
}

func contactData(companyName string, m *contact.Message) ContactEmailData {
	data := ContactEmailData{
		CompanyName: companyName,
		Name:        m.FullName(),
		Email:       m.Email,
		Subject:     m.Subject,
		Message:     m.Message,
		SentAt:      m.CreatedAt.Format("2 Jan 2006"),
	}
	if m.Phone != nil {
		data.Phone = *m.Phone
	}
	if m.Company != nil {
		data.Company = *m.Company
	}
	if m.Response != nil {
		data.Response = *m.Response
	}
	return data
}

// SendContactNotification forwards a new message to the admin inbox with the
// sender as reply-to.
func (e *EmailService) SendContactNotification(ctx context.Context, m *contact.Message) error {
	html, err := e.renderTemplate("contact_notification.html", contactData(e.config.CompanyName, m))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("New contact message: %s", m.Subject)
	return e.sendEmail(ctx, e.config.CompanyName, e.config.AdminEmail, m.Email, subject, html)
}

func (e *EmailService) SendContactResponse(ctx context.Context, m *contact.Message) error {
	html, err := e.renderTemplate("contact_response.html", contactData(e.config.CompanyName, m))
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Re: %s", m.Subject)
	return e.sendEmail(ctx, m.FullName(), m.Email, e.config.AdminEmail, subject, html)
}

// NoopEmailService logs instead of sending; used when email is disabled.
type NoopEmailService struct {
	logger *logrus.Logger
}

func NewNoopEmailService(logger *logrus.Logger) ports.EmailService {
	return &NoopEmailService{logger: logger}
}

func (n *NoopEmailService) SendBookingConfirmation(_ context.Context, b *booking.Booking) error {
	n.logger.WithField("reference_no", b.ReferenceNo).Debug("email disabled: booking confirmation skipped")
	return nil
}

func (n *NoopEmailService) SendContactNotification(_ context.Context, m *contact.Message) error {
	n.logger.WithField("contact_id", m.ID).Debug("email disabled: contact notification skipped")
	return nil
}

func (n *NoopEmailService) SendContactResponse(_ context.Context, m *contact.Message) error {
	n.logger.WithField("contact_id", m.ID).Debug("email disabled: contact response skipped")
	return nil
}
