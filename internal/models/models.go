package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleUser, RoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// CanAccessAnyOwner reports whether the role bypasses owner scoping on the
// endpoints that honor elevated access.
func (r Role) CanAccessAnyOwner() bool {
	return r == RoleAdmin
}

// --- Job Status Enum ---
// Spans both posting availability (open/closed) and the application pipeline.
type JobStatus string

const (
	JobStatusApplied   JobStatus = "applied"
	JobStatusInterview JobStatus = "interview"
	JobStatusOffer     JobStatus = "offer"
	JobStatusAccepted  JobStatus = "accepted"
	JobStatusRejected  JobStatus = "rejected"
	JobStatusOpen      JobStatus = "open"
	JobStatusClosed    JobStatus = "closed"
)

// Scan implements the sql.Scanner interface for JobStatus
func (s *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusApplied, JobStatusInterview, JobStatusOffer, JobStatusAccepted,
		JobStatusRejected, JobStatusOpen, JobStatusClosed:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (s JobStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// IsPipeline reports whether the status is part of the application pipeline.
// Duplicate (owner, company, title, status) entries are only rejected inside
// the pipeline set.
func (s JobStatus) IsPipeline() bool {
	switch s {
	case JobStatusApplied, JobStatusInterview, JobStatusOffer, JobStatusAccepted, JobStatusRejected:
		return true
	default:
		return false
	}
}

// --- Job Type Enum ---
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

// Scan implements the sql.Scanner interface for JobType
func (t *JobType) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobType: value is not string or []byte")
		}
	}
	v := JobType(strVal)
	switch v {
	case JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeRemote:
		*t = v
		return nil
	default:
		return fmt.Errorf("invalid JobType value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobType
func (t JobType) Value() (driver.Value, error) {
	return string(t), nil
}

// --- Application Status Enum ---
// Deliberately a separate type from JobStatus: the Application pipeline has no
// posting-availability states.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusApplied, ApplicationStatusInterview, ApplicationStatusOffer,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Internship Status Enum ---
type InternshipStatus string

const (
	InternshipStatusOpen   InternshipStatus = "open"
	InternshipStatusClosed InternshipStatus = "closed"
)

// Scan implements the sql.Scanner interface for InternshipStatus
func (s *InternshipStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan InternshipStatus: value is not string or []byte")
		}
	}
	v := InternshipStatus(strVal)
	switch v {
	case InternshipStatusOpen, InternshipStatusClosed:
		*s = v
		return nil
	default:
		return fmt.Errorf("invalid InternshipStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for InternshipStatus
func (s InternshipStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Notifications Frequency Enum ---
type NotificationsFrequency string

const (
	FrequencyImmediately NotificationsFrequency = "immediately"
	FrequencyDaily       NotificationsFrequency = "daily"
	FrequencyWeekly      NotificationsFrequency = "weekly"
	FrequencyNever       NotificationsFrequency = "never"
)

// Scan implements the sql.Scanner interface for NotificationsFrequency
func (f *NotificationsFrequency) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan NotificationsFrequency: value is not string or []byte")
		}
	}
	v := NotificationsFrequency(strVal)
	switch v {
	case FrequencyImmediately, FrequencyDaily, FrequencyWeekly, FrequencyNever:
		*f = v
		return nil
	default:
		return fmt.Errorf("invalid NotificationsFrequency value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for NotificationsFrequency
func (f NotificationsFrequency) Value() (driver.Value, error) {
	return string(f), nil
}

// User represents an identity record. Accounts are created on first Google
// login or local registration; PasswordHash is nil for OAuth-only accounts.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"` // stored lowercase, globally unique
	GoogleID       *string   `json:"google_id,omitempty" db:"google_id"`
	ProfilePicture string    `json:"profile_picture,omitempty" db:"profile_picture"`
	Role           Role      `json:"role" db:"role"`
	IsVerified     bool      `json:"is_verified" db:"is_verified"`
	PasswordHash   *string   `json:"-" db:"password_hash"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Link is a labeled URL attached to a tracked record.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Job is a job-application record owned by exactly one user.
type Job struct {
	ID            uuid.UUID              `json:"id" db:"id"`
	PostedBy      uuid.UUID              `json:"postedBy" db:"posted_by"`
	Title         string                 `json:"title" db:"title"`
	Company       string                 `json:"company" db:"company"`
	Location      string                 `json:"location" db:"location"`
	Description   string                 `json:"description" db:"description"`
	Requirements  []string               `json:"requirements" db:"requirements"`
	SalaryMin     *float64               `json:"salaryMin,omitempty" db:"salary_min"`
	SalaryMax     *float64               `json:"salaryMax,omitempty" db:"salary_max"`
	JobType       JobType                `json:"jobType" db:"job_type"`
	Status        JobStatus              `json:"status" db:"status"`
	DateAdded     time.Time              `json:"dateAdded" db:"date_added"`
	DeadlineDate  *time.Time             `json:"deadlineDate,omitempty" db:"deadline_date"`
	InterviewDate *time.Time             `json:"interviewDate,omitempty" db:"interview_date"`
	ResumeVersion string                 `json:"resumeVersion" db:"resume_version"`
	Links         []Link                 `json:"links" db:"links"`
	Notes         string                 `json:"notes" db:"notes"`
	ExtraFields   map[string]interface{} `json:"extraFields" db:"extra_fields"`
	CreatedAt     time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time              `json:"updatedAt" db:"updated_at"`
}

// Internship is a posting record. Listing and update are deliberately
// owner-agnostic; only creation records the poster.
type Internship struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	PostedBy    uuid.UUID        `json:"postedBy" db:"posted_by"`
	Title       string           `json:"title" db:"title"`
	Company     string           `json:"company" db:"company"`
	Location    string           `json:"location" db:"location"`
	Description string           `json:"description" db:"description"`
	Eligibility []string         `json:"eligibility" db:"eligibility"`
	Duration    string           `json:"duration" db:"duration"`
	Stipend     *float64         `json:"stipend,omitempty" db:"stipend"`
	Status      InternshipStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time        `json:"updatedAt" db:"updated_at"`
}

// Application is a candidate's application record owned by OwnerID.
type Application struct {
	ID            uuid.UUID         `json:"id" db:"id"`
	OwnerID       uuid.UUID         `json:"ownerId" db:"owner_id"`
	Company       string            `json:"company" db:"company"`
	RoleTitle     string            `json:"roleTitle" db:"role_title"`
	Status        ApplicationStatus `json:"status" db:"status"`
	DeadlineDate  *time.Time        `json:"deadlineDate,omitempty" db:"deadline_date"`
	InterviewDate *time.Time        `json:"interviewDate,omitempty" db:"interview_date"`
	ResumeVersion string            `json:"resumeVersion" db:"resume_version"`
	Links         []Link            `json:"links" db:"links"`
	Notes         string            `json:"notes" db:"notes"`
	CreatedAt     time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time         `json:"updatedAt" db:"updated_at"`
}

// Settings holds per-user preferences, keyed by the account email acting as a
// username.
type Settings struct {
	ID                     uuid.UUID              `json:"-" db:"id"`
	Username               string                 `json:"username" db:"username"`
	DarkMode               bool                   `json:"darkMode" db:"dark_mode"`
	EmailNotifications     bool                   `json:"emailNotifications" db:"email_notifications"`
	NotificationsFrequency NotificationsFrequency `json:"notificationsFrequency" db:"notifications_frequency"`
	CreatedAt              time.Time              `json:"-" db:"created_at"`
	UpdatedAt              time.Time              `json:"updatedAt" db:"updated_at"`
}

// JobStats aggregates the caller's jobs by status into fixed buckets.
type JobStats struct {
	Total     int `json:"total"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Pending   int `json:"pending"`
	Offer     int `json:"offer"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
}
