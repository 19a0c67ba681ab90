package services

import (
	"context"
	"log"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"
)

type userService struct {
	userRepo storage.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo storage.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		log.Printf("UserService: Error listing users: %v", err)
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if err != nil {
		log.Printf("UserService: Error getting user %s: %v", req.ID, err)
		return nil, mapRepoError(err, "getting user by ID")
	}
	return user, nil
}

// UpdateProfile changes the self-service fields only. The repo never touches
// role or password from this path; a duplicate email surfaces as such.
func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateUserProfileRequest) (*models.User, error) {
	user, err := s.userRepo.UpdateProfile(ctx, req)
	if err != nil {
		log.Printf("UserService: Error updating profile for %s: %v", req.ID, err)
		return nil, mapRepoError(err, "updating profile")
	}
	return user, nil
}
