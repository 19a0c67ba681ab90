package services

import (
	"context"
	"log"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"
)

type applicationService struct {
	applicationRepo storage.ApplicationRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(applicationRepo storage.ApplicationRepository) ApplicationService {
	return &applicationService{applicationRepo: applicationRepo}
}

func (s *applicationService) CreateApplication(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	// OwnerID is already set in the handler from context, passed in req.
	if err := validateDateOrder(req.DeadlineDate, req.InterviewDate); err != nil {
		return nil, err
	}

	app, err := s.applicationRepo.Create(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error creating application: %v", err)
		return nil, mapRepoError(err, "creating application")
	}
	return app, nil
}

// ListApplicationsByUser returns one user's applications. Non-admin callers
// may only list their own.
func (s *applicationService) ListApplicationsByUser(ctx context.Context, caller dto.Caller, req *dto.ListApplicationsByUserRequest) (*dto.ApplicationListResult, error) {
	if req.UserID != caller.ID && !canAccessAnyOwner(caller.Role) {
		log.Printf("ApplicationService: Forbidden list attempt on user %s by caller %s", req.UserID, caller.ID)
		return nil, ErrForbidden
	}

	req.Normalize()
	result, err := s.applicationRepo.ListByUser(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for %s: %v", req.UserID, err)
		return nil, mapRepoError(err, "listing applications")
	}
	return result, nil
}

// UpdateApplication applies a whitelisted partial update after the ownership
// check. A non-owner gets forbidden and the record is untouched.
func (s *applicationService) UpdateApplication(ctx context.Context, caller dto.Caller, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	existing, err := s.applicationRepo.GetByID(ctx, &dto.GetApplicationByIDRequest{ID: req.ID})
	if err != nil {
		log.Printf("ApplicationService: Error fetching application %s for update: %v", req.ID, err)
		return nil, mapRepoError(err, "fetching application for update")
	}

	if existing.OwnerID != caller.ID && !canAccessAnyOwner(caller.Role) {
		log.Printf("ApplicationService: Forbidden update attempt on application %s by caller %s", req.ID, caller.ID)
		return nil, ErrForbidden
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

	updated, err := s.applicationRepo.Update(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error updating application %s: %v", req.ID, err)
		return nil, mapRepoError(err, "updating application")
	}
	return updated, nil
}

// UpdateApplicationStatus moves an application along the pipeline, owner or
// admin only.
func (s *applicationService) UpdateApplicationStatus(ctx context.Context, caller dto.Caller, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	existing, err := s.applicationRepo.GetByID(ctx, &dto.GetApplicationByIDRequest{ID: req.ID})
	if err != nil {
		log.Printf("ApplicationService: Error fetching application %s for status update: %v", req.ID, err)
		return nil, mapRepoError(err, "fetching application for status update")
	}

	if existing.OwnerID != caller.ID && !canAccessAnyOwner(caller.Role) {
		log.Printf("ApplicationService: Forbidden status update attempt on application %s by caller %s", req.ID, caller.ID)
		return nil, ErrForbidden
	}

	updated, err := s.applicationRepo.UpdateStatus(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error updating application status %s: %v", req.ID, err)
		return nil, mapRepoError(err, "updating application status")
	}
	return updated, nil
}
