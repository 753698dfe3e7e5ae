package contact

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type Status string

const (
	StatusNew       Status = "NEW"
	StatusRead      Status = "READ"
	StatusResponded Status = "RESPONDED"
)

type Message struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	Email       string     `json:"email" db:"email"`
	Phone       *string    `json:"phone" db:"phone"`
	Company     *string    `json:"company" db:"company"`
	Subject     string     `json:"subject" db:"subject"`
	Message     string     `json:"message" db:"message"`
	Status      Status     `json:"status" db:"status"`
	Response    *string    `json:"response" db:"response"`
	RespondedAt *time.Time `json:"respondedAt" db:"responded_at"`
	UserID      *uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

func (m *Message) FullName() string {
	return m.FirstName + " " + m.LastName
}

type CreateMessageRequest struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Company   *string    `json:"company,omitempty"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	UserID    *uuid.UUID `json:"userId,omitempty"`
}

func (r *CreateMessageRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Subject, validation.Required),
		validation.Field(&r.Message, validation.Required, validation.Length(1, 5000)),
	)
}

type RespondRequest struct {
	Response string `json:"response"`
}

func (r *RespondRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Response, validation.Required),
	)
}
