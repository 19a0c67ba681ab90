package services

import (
	"context"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/transport/dto"
)

// AuthService defines the interface for login, registration, and session
// business logic.
type AuthService interface {
	GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, error) // Returns a fresh access token
	Me(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
}

// UserService defines the interface for account business logic.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*models.User, error)
}

// JobService defines the interface for job-tracking business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobListResult, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
	DeleteAllJobs(ctx context.Context, req *dto.DeleteAllJobsRequest) (int, error)
	GetJobStats(ctx context.Context, req *dto.JobStatsRequest) (*models.JobStats, error)
}

// ApplicationService defines the interface for application business logic.
// Operations that can touch another user's records take the caller identity
// so the ownership check happens in one place.
type ApplicationService interface {
	CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	ListApplicationsByUser(ctx context.Context, caller dto.Caller, req *dto.ListApplicationsByUserRequest) (*dto.ApplicationListResult, error)
	UpdateApplication(ctx context.Context, caller dto.Caller, req *dto.UpdateApplicationRequest) (*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, caller dto.Caller, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

// InternshipService defines the interface for posting business logic.
type InternshipService interface {
	CreateInternship(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error)
	GetInternshipByID(ctx context.Context, req *dto.GetInternshipByIDRequest) (*models.Internship, error)
	ListInternships(ctx context.Context, req *dto.ListInternshipsRequest) (*dto.InternshipListResult, error)
	UpdateInternship(ctx context.Context, req *dto.UpdateInternshipRequest) (*models.Internship, error)
}

// SettingsService defines the interface for per-user settings business logic.
type SettingsService interface {
	GetSettings(ctx context.Context, req *dto.GetSettingsRequest) (*models.Settings, error)
	UpsertSettings(ctx context.Context, req *dto.UpsertSettingsRequest) (*models.Settings, error)
}
