// internal/transport/dto/user_dto.go
package dto

import (
	"time"

	"jobtrack-api/internal/models"

	"github.com/google/uuid"
)

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"-" validate:"required,email"`
}

// GetUserByGoogleIDRequest defines the structure for getting a user by the
// Google subject id.
type GetUserByGoogleIDRequest struct {
	GoogleID string `json:"-" validate:"required"`
}

// CreateUserRequest defines the structure for creating a new account row.
// Built internally by the auth service, never bound from a request body.
type CreateUserRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	GoogleID       *string `json:"-"`
	ProfilePicture string  `json:"-"`
	PasswordHash   *string `json:"-"`
}

// UpdateUserProfileRequest defines the self-service profile update. Role and
// password are deliberately absent.
type UpdateUserProfileRequest struct {
	ID    uuid.UUID `json:"-" validate:"required"`
	Name  *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string   `json:"email,omitempty" validate:"omitempty,email"`
}

// LinkGoogleIDRequest attaches a Google subject id to an existing account.
type LinkGoogleIDRequest struct {
	ID       uuid.UUID `json:"-" validate:"required"`
	GoogleID string    `json:"-" validate:"required"`
}

// UserResponse is the account shape returned to clients. Never carries the
// password hash.
type UserResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	ProfilePicture string      `json:"profilePicture,omitempty"`
	Role           models.Role `json:"role"`
	IsVerified     bool        `json:"isVerified"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// NewUserResponse maps an account row to its client shape.
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Role:           u.Role,
		IsVerified:     u.IsVerified,
		CreatedAt:      u.CreatedAt,
	}
}
