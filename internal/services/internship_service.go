package services

import (
	"context"
	"fmt"
	"log"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"
)

type internshipService struct {
	internshipRepo storage.InternshipRepository
}

// NewInternshipService creates a new instance of InternshipService.
func NewInternshipService(internshipRepo storage.InternshipRepository) InternshipService {
	return &internshipService{internshipRepo: internshipRepo}
}

func (s *internshipService) CreateInternship(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	// PostedBy is already set in the handler from context, passed in req.
	in, err := s.internshipRepo.Create(ctx, req)
	if err != nil {
		log.Printf("InternshipService: Error creating internship: %v", err)
		return nil, mapRepoError(err, "creating internship")
	}
	return in, nil
}

func (s *internshipService) GetInternshipByID(ctx context.Context, req *dto.GetInternshipByIDRequest) (*models.Internship, error) {
	in, err := s.internshipRepo.GetByID(ctx, req)
	if err != nil {
		log.Printf("InternshipService: Error getting internship %s: %v", req.ID, err)
		return nil, mapRepoError(err, "getting internship by ID")
	}
	return in, nil
}

func (s *internshipService) ListInternships(ctx context.Context, req *dto.ListInternshipsRequest) (*dto.InternshipListResult, error) {
	if req.StipendMin != nil && req.StipendMax != nil && *req.StipendMax < *req.StipendMin {
		return nil, fmt.Errorf("%w: stipendMax must not be below stipendMin", ErrValidation)
	}

	req.Normalize()
	result, err := s.internshipRepo.List(ctx, req)
	if err != nil {
		log.Printf("InternshipService: Error listing internships: %v", err)
		return nil, mapRepoError(err, "listing internships")
	}
	return result, nil
}

// UpdateInternship applies a whitelisted partial update. Any authenticated
// user may update any posting; there is no ownership check here.
func (s *internshipService) UpdateInternship(ctx context.Context, req *dto.UpdateInternshipRequest) (*models.Internship, error) {
	updated, err := s.internshipRepo.Update(ctx, req)
	if err != nil {
		log.Printf("InternshipService: Error updating internship %s: %v", req.ID, err)
		return nil, mapRepoError(err, "updating internship")
	}
	return updated, nil
}
