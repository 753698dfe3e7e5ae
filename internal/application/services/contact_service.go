package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

type ContactService struct {
	repo         ports.ContactRepository
	emailService ports.EmailService
	logger       *logrus.Logger
}

func NewContactService(repo ports.ContactRepository, emailService ports.EmailService, logger *logrus.Logger) ports.ContactService {
	return &ContactService{repo: repo, emailService: emailService, logger: logger}
}

func (s *ContactService) CreateMessage(ctx context.Context, req *contact.CreateMessageRequest) (*contact.Message, error) {
	now := time.Now()
	m := &contact.Message{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    contact.StatusNew,
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		if err := s.emailService.SendContactNotification(ctx, m); err != nil {
			s.logger.WithField("contact_id", m.ID).WithError(err).Warn("failed to notify admin inbox")
		}
	}
	return m, nil
}

func (s *ContactService) GetMessage(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	return s.repo.GetByID(ctx, id)
}

// MarkAsRead moves a NEW message to READ. Messages that were already
// answered keep their RESPONDED status.
func (s *ContactService) MarkAsRead(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status == contact.StatusResponded {
		return m, nil
	}
	m.Status = contact.StatusRead
	m.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ContactService) Respond(ctx context.Context, id uuid.UUID, response string) (*contact.Message, error) {
	if response == "" {
		return nil, domain.Errorf(domain.ErrInvalidInput, "response: cannot be blank.")
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	m.Status = contact.StatusResponded
	m.Response = &response
	m.RespondedAt = &now
	m.UpdatedAt = now
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	if s.emailService != nil {
		if err := s.emailService.SendContactResponse(ctx, m); err != nil {
			s.logger.WithFields(logrus.Fields{"contact_id": m.ID, "email": m.Email}).WithError(err).Warn("failed to email contact response")
		}
	}
	return m, nil
}

func (s *ContactService) DeleteMessage(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	return s.repo.SoftDelete(ctx, id)
}

func (s *ContactService) ListMessages(ctx context.Context, params domain.ListParams) ([]*contact.Message, error) {
	return s.repo.List(ctx, params)
}
