// internal/transport/dto/internship_dto.go
package dto

import (
	"jobtrack-api/internal/models"

	"github.com/google/uuid"
)

const (
	internshipLimitDefault = 10
	internshipLimitMax     = 100
)

// --- Internship Request DTOs ---

// CreateInternshipRequest defines the structure for creating a posting.
type CreateInternshipRequest struct {
	PostedBy    uuid.UUID                `json:"-"` // Set internally by handler from auth context
	Title       string                   `json:"title" validate:"required,min=2,max=120"`
	Company     string                   `json:"company" validate:"required,min=1,max=120"`
	Location    *string                  `json:"location,omitempty" validate:"omitempty,max=120"`
	Description *string                  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Eligibility []string                 `json:"eligibility,omitempty" validate:"omitempty,dive,max=500"`
	Duration    *string                  `json:"duration,omitempty" validate:"omitempty,max=120"`
	Stipend     *float64                 `json:"stipend,omitempty" validate:"omitempty,gte=0"`
	Status      *models.InternshipStatus `json:"status,omitempty" validate:"omitempty,oneof=open closed"`
}

// GetInternshipByIDRequest defines the structure for loading one posting.
type GetInternshipByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListInternshipsRequest defines parameters for the global posting list.
// Listing is not owner-scoped.
type ListInternshipsRequest struct {
	Page       int      `form:"page,default=1"`
	Limit      int      `form:"limit,default=10"`
	Status     *string  `form:"status" validate:"omitempty,oneof=open closed"`
	Company    *string  `form:"company" validate:"omitempty,max=120"`
	Q          *string  `form:"q" validate:"omitempty,max=200"`
	StipendMin *float64 `form:"stipendMin" validate:"omitempty,gte=0"`
	StipendMax *float64 `form:"stipendMax" validate:"omitempty,gte=0"`
	Sort       string   `form:"sort,default=-createdAt"`
}

// Normalize clamps pagination to the documented bounds.
func (r *ListInternshipsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = internshipLimitDefault
	}
	if r.Limit > internshipLimitMax {
		r.Limit = internshipLimitMax
	}
	if r.Sort == "" {
		r.Sort = "-createdAt"
	}
}

// UpdateInternshipRequest defines the whitelisted partial-update structure.
// Any authenticated user may update a posting.
type UpdateInternshipRequest struct {
	ID          uuid.UUID                `json:"-" validate:"required"`
	Title       *string                  `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Company     *string                  `json:"company,omitempty" validate:"omitempty,min=1,max=120"`
	Location    *string                  `json:"location,omitempty" validate:"omitempty,max=120"`
	Description *string                  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Eligibility []string                 `json:"eligibility,omitempty" validate:"omitempty,dive,max=500"`
	Duration    *string                  `json:"duration,omitempty" validate:"omitempty,max=120"`
	Stipend     *float64                 `json:"stipend,omitempty" validate:"omitempty,gte=0"`
	Status      *models.InternshipStatus `json:"status,omitempty" validate:"omitempty,oneof=open closed"`
}

// --- Internship Response DTOs ---

// InternshipListResult pairs a page of postings with the total count.
type InternshipListResult struct {
	Items []models.Internship
	Total int
}
