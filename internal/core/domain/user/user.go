package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"firstName" db:"first_name"`
	LastName     string     `json:"lastName" db:"last_name"`
	Phone        *string    `json:"phone" db:"phone"`
	Role         Role       `json:"role" db:"role"`
	IsActive     bool       `json:"isActive" db:"is_active"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

type Role string

const (
	RoleSuperAdmin     Role = "SUPER_ADMIN"
	RoleContentManager Role = "CONTENT_MANAGER"
	RoleBookingManager Role = "BOOKING_MANAGER"
	RoleUser           Role = "USER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleContentManager, RoleBookingManager, RoleUser:
		return true
	default:
		return false
	}
}

var roleRule = validation.In(RoleSuperAdmin, RoleContentManager, RoleBookingManager, RoleUser).Error("must be a valid role")

// CreateUserRequest is used by admins and by public registration.
type CreateUserRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
	Role      *Role   `json:"role,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Role, roleRule),
	)
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
	Password  *string `json:"password,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.NilOrNotEmpty),
		validation.Field(&r.LastName, validation.NilOrNotEmpty),
		validation.Field(&r.Role, roleRule),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(6, 0)),
	)
}
