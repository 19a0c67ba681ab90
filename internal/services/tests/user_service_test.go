package services_test

import (
	"context"
	"testing"

	"jobtrack-api/internal/mocks"
	"jobtrack-api/internal/models"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to a string
func ptrString(s string) *string { return &s }

func setupUserServiceTest() (context.Context, services.UserService, *mocks.MockUserRepository) {
	mockRepo := new(mocks.MockUserRepository)
	svc := services.NewUserService(mockRepo)
	ctx := context.Background()
	return ctx, svc, mockRepo
}

func TestUserService_GetAll_Success(t *testing.T) {
	ctx, svc, mockRepo := setupUserServiceTest()

	users := []models.User{
		{ID: uuid.New(), Name: "Jordan", Email: "jordan@example.com", Role: models.RoleUser},
		{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin},
	}
	mockRepo.On("GetAll", ctx).Return(users, nil).Once()

	result, err := svc.GetAll(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	ctx, svc, mockRepo := setupUserServiceTest()

	req := &dto.GetUserByIdRequest{ID: uuid.New()}
	mockRepo.On("GetByID", ctx, req).Return(nil, storage.ErrNotFound).Once()

	user, err := svc.GetByID(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_DuplicateEmail(t *testing.T) {
	ctx, svc, mockRepo := setupUserServiceTest()

	req := &dto.UpdateUserProfileRequest{
		ID:    uuid.New(),
		Email: ptrString("taken@example.com"),
	}
	mockRepo.On("UpdateProfile", ctx, req).Return(nil, storage.ErrDuplicate).Once()

	user, err := svc.UpdateProfile(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrDuplicate)
	assert.Nil(t, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	ctx, svc, mockRepo := setupUserServiceTest()

	userID := uuid.New()
	req := &dto.UpdateUserProfileRequest{
		ID:   userID,
		Name: ptrString("Jordan Updated"),
	}
	updated := &models.User{ID: userID, Name: "Jordan Updated", Email: "jordan@example.com"}
	mockRepo.On("UpdateProfile", ctx, req).Return(updated, nil).Once()

	user, err := svc.UpdateProfile(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "Jordan Updated", user.Name)
	mockRepo.AssertExpectations(t)
}
