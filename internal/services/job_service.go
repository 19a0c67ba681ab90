package services

import (
	"context"
	"log"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"
)

type jobService struct {
	jobRepo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	// PostedBy is already set in the handler from context, passed in req.
	if err := validateDateOrder(req.DeadlineDate, req.InterviewDate); err != nil {
		return nil, err
	}
	if err := validateSalaryRange(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req)
	if err != nil {
		log.Printf("JobService: Error getting job %s: %v", req.ID, err)
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) (*dto.JobListResult, error) {
	req.Normalize()
	result, err := s.jobRepo.List(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing jobs for %s: %v", req.OwnerID, err)
		return nil, mapRepoError(err, "listing jobs")
	}
	return result, nil
}

// UpdateJob applies a whitelisted partial update. The date-order and
// salary-range rules are re-checked against the stored record so a partial
// update cannot sneak an interview date in front of an existing deadline or
// a salary floor above an existing ceiling.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	getReq := dto.GetJobByIDRequest{ID: req.ID, OwnerID: req.OwnerID}
	existing, err := s.jobRepo.GetByID(ctx, &getReq)
	if err != nil {
		log.Printf("JobService: Error fetching job %s for update: %v", req.ID, err)
		return nil, mapRepoError(err, "fetching job for update")
	}

	deadline := existing.DeadlineDate
	if req.DeadlineDate != nil {
		deadline = req.DeadlineDate
	}
	interview := existing.InterviewDate
	if req.InterviewDate != nil {
		interview = req.InterviewDate
	}
	if err := validateDateOrder(deadline, interview); err != nil {
		return nil, err
	}

	salaryMin := existing.SalaryMin
	if req.SalaryMin != nil {
		salaryMin = req.SalaryMin
	}
	salaryMax := existing.SalaryMax
	if req.SalaryMax != nil {
		salaryMax = req.SalaryMax
	}
	if err := validateSalaryRange(salaryMin, salaryMax); err != nil {
		return nil, err
	}

	updated, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		log.Printf("JobService: Error updating job %s: %v", req.ID, err)
		return nil, mapRepoError(err, "updating job")
	}
	return updated, nil
}

func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	if err := s.jobRepo.Delete(ctx, req); err != nil {
		log.Printf("JobService: Error deleting job %s: %v", req.ID, err)
		return mapRepoError(err, "deleting job")
	}
	return nil
}

func (s *jobService) DeleteAllJobs(ctx context.Context, req *dto.DeleteAllJobsRequest) (int, error) {
	deleted, err := s.jobRepo.DeleteAll(ctx, req)
	if err != nil {
		log.Printf("JobService: Error deleting all jobs for %s: %v", req.OwnerID, err)
		return 0, mapRepoError(err, "deleting all jobs")
	}
	return deleted, nil
}

func (s *jobService) GetJobStats(ctx context.Context, req *dto.JobStatsRequest) (*models.JobStats, error) {
	stats, err := s.jobRepo.Stats(ctx, req)
	if err != nil {
		log.Printf("JobService: Error computing stats for %s: %v", req.OwnerID, err)
		return nil, mapRepoError(err, "computing job stats")
	}
	return stats, nil
}
