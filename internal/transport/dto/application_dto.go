// internal/transport/dto/application_dto.go
package dto

import (
	"time"

	"jobtrack-api/internal/models"

	"github.com/google/uuid"
)

const (
	applicationLimitDefault = 20
	applicationLimitMax     = 100
)

// --- Application Request DTOs ---

// CreateApplicationRequest defines the structure for creating an application.
type CreateApplicationRequest struct {
	OwnerID       uuid.UUID                 `json:"-"` // Set internally by handler from auth context
	Company       string                    `json:"company" validate:"required,min=1,max=120"`
	RoleTitle     string                    `json:"roleTitle" validate:"required,min=1,max=120"`
	Status        *models.ApplicationStatus `json:"status,omitempty" validate:"omitempty,oneof=applied interview offer rejected accepted"`
	DeadlineDate  *time.Time                `json:"deadlineDate,omitempty"`
	InterviewDate *time.Time                `json:"interviewDate,omitempty"`
	ResumeVersion *string                   `json:"resumeVersion,omitempty" validate:"omitempty,max=100"`
	Links         []LinkPayload             `json:"links,omitempty" validate:"omitempty,dive"`
	Notes         *string                   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// GetApplicationByIDRequest defines the structure for loading one application.
type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// Caller identifies the authenticated requester for ownership checks. Filled
// by the handler from the auth context, never bound from the body.
type Caller struct {
	ID   uuid.UUID   `json:"-"`
	Role models.Role `json:"-"`
}

// ListApplicationsByUserRequest defines parameters for listing a user's
// applications. UserID comes from the URL path, not the caller identity;
// the service decides whether the caller may see it.
type ListApplicationsByUserRequest struct {
	UserID  uuid.UUID `json:"-" validate:"required"`
	Page    int       `form:"page,default=1"`
	Limit   int       `form:"limit,default=20"`
	Status  *string   `form:"status" validate:"omitempty,oneof=applied interview offer rejected accepted"`
	Company *string   `form:"company" validate:"omitempty,max=120"`
	SortBy  string    `form:"sortBy,default=createdAt"`
	SortDir string    `form:"sortDir,default=desc" validate:"omitempty,oneof=asc desc"`
}

// Normalize clamps pagination to the documented bounds.
func (r *ListApplicationsByUserRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = applicationLimitDefault
	}
	if r.Limit > applicationLimitMax {
		r.Limit = applicationLimitMax
	}
	if r.SortBy == "" {
		r.SortBy = "createdAt"
	}
	if r.SortDir == "" {
		r.SortDir = "desc"
	}
}

// UpdateApplicationRequest defines the whitelisted partial-update structure.
type UpdateApplicationRequest struct {
	ID            uuid.UUID                 `json:"-" validate:"required"`
	Company       *string                   `json:"company,omitempty" validate:"omitempty,min=1,max=120"`
	RoleTitle     *string                   `json:"roleTitle,omitempty" validate:"omitempty,min=1,max=120"`
	Status        *models.ApplicationStatus `json:"status,omitempty" validate:"omitempty,oneof=applied interview offer rejected accepted"`
	DeadlineDate  *time.Time                `json:"deadlineDate,omitempty"`
	InterviewDate *time.Time                `json:"interviewDate,omitempty"`
	ResumeVersion *string                   `json:"resumeVersion,omitempty" validate:"omitempty,max=100"`
	Links         []LinkPayload             `json:"links,omitempty" validate:"omitempty,dive"`
	Notes         *string                   `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateApplicationStatusRequest moves an application along the pipeline.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID                `json:"-" validate:"required"`
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=applied interview offer rejected accepted"`
}

// --- Application Response DTOs ---

// ApplicationListResult pairs a page of applications with the total count.
type ApplicationListResult struct {
	Items []models.Application
	Total int
}
