// internal/transport/dto/job_dto.go
package dto

import (
	"time"

	"jobtrack-api/internal/models"

	"github.com/google/uuid"
)

const (
	jobLimitDefault = 100
	jobLimitMax     = 1000
)

// LinkPayload is a labeled URL entry on jobs and applications.
type LinkPayload struct {
	Label string `json:"label" validate:"omitempty,max=120"`
	URL   string `json:"url" validate:"required,url"`
}

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a job-tracking entry.
type CreateJobRequest struct {
	PostedBy      uuid.UUID              `json:"-"` // Set internally by handler from auth context
	Title         string                 `json:"title" validate:"required,min=2,max=120"`
	Company       string                 `json:"company" validate:"required,min=1,max=120"`
	Location      *string                `json:"location,omitempty" validate:"omitempty,max=120"`
	Description   *string                `json:"description,omitempty" validate:"omitempty,max=10000"`
	Requirements  []string               `json:"requirements,omitempty" validate:"omitempty,dive,max=500"`
	SalaryMin     *float64               `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax     *float64               `json:"salaryMax,omitempty" validate:"omitempty,gte=0"`
	JobType       *models.JobType        `json:"jobType,omitempty" validate:"omitempty,oneof=full-time part-time internship remote"`
	Status        *models.JobStatus      `json:"status,omitempty" validate:"omitempty,oneof=applied interview offer accepted rejected open closed"`
	DateAdded     *time.Time             `json:"dateAdded,omitempty"`
	DeadlineDate  *time.Time             `json:"deadlineDate,omitempty"`
	InterviewDate *time.Time             `json:"interviewDate,omitempty"`
	ResumeVersion *string                `json:"resumeVersion,omitempty" validate:"omitempty,max=100"`
	Links         []LinkPayload          `json:"links,omitempty" validate:"omitempty,dive"`
	Notes         *string                `json:"notes,omitempty" validate:"omitempty,max=2000"`
	ExtraFields   map[string]interface{} `json:"extraFields,omitempty"`
}

// GetJobByIDRequest defines the structure for getting a job by ID.
// Reads are owner-scoped, so the caller id rides along.
type GetJobByIDRequest struct {
	ID      uuid.UUID `json:"-" validate:"required"`
	OwnerID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsRequest defines parameters for listing the caller's jobs.
type ListJobsRequest struct {
	OwnerID uuid.UUID `json:"-" validate:"required"`
	Page    int       `form:"page,default=1"`
	Limit   int       `form:"limit,default=100"`
	Status  *string   `form:"status" validate:"omitempty,oneof=applied interview offer accepted rejected open closed"`
	Company *string   `form:"company" validate:"omitempty,max=120"`
	Q       *string   `form:"q" validate:"omitempty,max=200"`
	Sort    string    `form:"sort,default=-dateAdded"`
}

// Normalize clamps pagination to the documented bounds.
func (r *ListJobsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = jobLimitDefault
	}
	if r.Limit > jobLimitMax {
		r.Limit = jobLimitMax
	}
	if r.Sort == "" {
		r.Sort = "-dateAdded"
	}
}

// UpdateJobRequest defines the whitelisted partial-update structure for a job.
// Unknown fields are rejected at bind time.
type UpdateJobRequest struct {
	ID            uuid.UUID              `json:"-" validate:"required"`
	OwnerID       uuid.UUID              `json:"-" validate:"required"`
	Title         *string                `json:"title,omitempty" validate:"omitempty,min=2,max=120"`
	Company       *string                `json:"company,omitempty" validate:"omitempty,min=1,max=120"`
	Location      *string                `json:"location,omitempty" validate:"omitempty,max=120"`
	Description   *string                `json:"description,omitempty" validate:"omitempty,max=10000"`
	Requirements  []string               `json:"requirements,omitempty" validate:"omitempty,dive,max=500"`
	SalaryMin     *float64               `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax     *float64               `json:"salaryMax,omitempty" validate:"omitempty,gte=0"`
	JobType       *models.JobType        `json:"jobType,omitempty" validate:"omitempty,oneof=full-time part-time internship remote"`
	Status        *models.JobStatus      `json:"status,omitempty" validate:"omitempty,oneof=applied interview offer accepted rejected open closed"`
	DateAdded     *time.Time             `json:"dateAdded,omitempty"`
	DeadlineDate  *time.Time             `json:"deadlineDate,omitempty"`
	InterviewDate *time.Time             `json:"interviewDate,omitempty"`
	ResumeVersion *string                `json:"resumeVersion,omitempty" validate:"omitempty,max=100"`
	Links         []LinkPayload          `json:"links,omitempty" validate:"omitempty,dive"`
	Notes         *string                `json:"notes,omitempty" validate:"omitempty,max=2000"`
	ExtraFields   map[string]interface{} `json:"extraFields,omitempty"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID      uuid.UUID `json:"-" validate:"required"`
	OwnerID uuid.UUID `json:"-" validate:"required"`
}

// DeleteAllJobsRequest deletes every job the caller owns.
type DeleteAllJobsRequest struct {
	OwnerID uuid.UUID `json:"-" validate:"required"`
}

// JobStatsRequest aggregates the caller's jobs by status.
type JobStatsRequest struct {
	OwnerID uuid.UUID `json:"-" validate:"required"`
}

// --- Job Response DTOs ---

// JobListMeta describes the page returned by the job listing.
type JobListMeta struct {
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Pages int    `json:"pages"`
	Sort  string `json:"sort"`
}

// JobListResult pairs a page of jobs with the total match count.
type JobListResult struct {
	Jobs  []models.Job
	Total int
}
