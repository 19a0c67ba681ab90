package storage

import (
	"context"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/transport/dto"
)

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
	GetByGoogleID(ctx context.Context, req *dto.GetUserByGoogleIDRequest) (*models.User, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*models.User, error)
	LinkGoogleID(ctx context.Context, req *dto.LinkGoogleIDRequest) (*models.User, error)
}

// JobRepository defines the interface for job-tracking data operations.
// Reads and writes are owner-scoped; a job invisible to the caller behaves as
// absent.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	List(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobListResult, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
	DeleteAll(ctx context.Context, req *dto.DeleteAllJobsRequest) (int, error)
	Stats(ctx context.Context, req *dto.JobStatsRequest) (*models.JobStats, error)
}

// ApplicationRepository defines the interface for application data operations.
// Ownership checks live in the service; the repo loads by id and filters
// lists by the requested user.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*models.Application, error)
	ListByUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) (*dto.ApplicationListResult, error)
	Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*models.Application, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

// InternshipRepository defines the interface for posting data operations.
type InternshipRepository interface {
	Create(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error)
	GetByID(ctx context.Context, req *dto.GetInternshipByIDRequest) (*models.Internship, error)
	List(ctx context.Context, req *dto.ListInternshipsRequest) (*dto.InternshipListResult, error)
	Update(ctx context.Context, req *dto.UpdateInternshipRequest) (*models.Internship, error)
}

// SettingsRepository defines the interface for per-user settings documents.
type SettingsRepository interface {
	GetByUsername(ctx context.Context, req *dto.GetSettingsRequest) (*models.Settings, error)
	Upsert(ctx context.Context, req *dto.UpsertSettingsRequest) (*models.Settings, error)
}
