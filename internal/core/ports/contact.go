package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
)

type ContactRepository interface {
	Create(ctx context.Context, m *contact.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	Update(ctx context.Context, m *contact.Message) error
	SoftDelete(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	List(ctx context.Context, params domain.ListParams) ([]*contact.Message, error)
	CountByStatus(ctx context.Context, status contact.Status) (int, error)
}

type ContactService interface {
	CreateMessage(ctx context.Context, req *contact.CreateMessageRequest) (*contact.Message, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	Respond(ctx context.Context, id uuid.UUID, response string) (*contact.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	ListMessages(ctx context.Context, params domain.ListParams) ([]*contact.Message, error)
}
