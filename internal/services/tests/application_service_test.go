package services_test

import (
	"context"
	"testing"
	"time"

	"jobtrack-api/internal/mocks"
	"jobtrack-api/internal/models"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a pointer to an ApplicationStatus
func ptrAppStatus(s models.ApplicationStatus) *models.ApplicationStatus { return &s }

func setupApplicationServiceTest() (context.Context, services.ApplicationService, *mocks.MockApplicationRepository) {
	mockRepo := new(mocks.MockApplicationRepository)
	svc := services.NewApplicationService(mockRepo)
	ctx := context.Background()
	return ctx, svc, mockRepo
}

func TestApplicationService_CreateApplication_Success(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	ownerID := uuid.New()
	req := &dto.CreateApplicationRequest{
		OwnerID:   ownerID,
		Company:   "Acme",
		RoleTitle: "Backend Engineer",
	}

	expected := &models.Application{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Company:   req.Company,
		RoleTitle: req.RoleTitle,
		Status:    models.ApplicationStatusApplied,
	}

	mockRepo.On("Create", ctx, req).Return(expected, nil).Once()

	app, err := svc.CreateApplication(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, app)
	mockRepo.AssertExpectations(t)
}

func TestApplicationService_CreateApplication_InterviewBeforeDeadline(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	interview := deadline.Add(-72 * time.Hour)
	req := &dto.CreateApplicationRequest{
		OwnerID:       uuid.New(),
		Company:       "Acme",
		RoleTitle:     "Backend Engineer",
		DeadlineDate:  ptrTime(deadline),
		InterviewDate: ptrTime(interview),
	}

	app, err := svc.CreateApplication(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Nil(t, app)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestApplicationService_ListApplicationsByUser_OwnList(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	userID := uuid.New()
	caller := dto.Caller{ID: userID, Role: models.RoleUser}
	req := &dto.ListApplicationsByUserRequest{UserID: userID}

	expected := &dto.ApplicationListResult{Items: []models.Application{}, Total: 0}
	mockRepo.On("ListByUser", ctx, req).Return(expected, nil).Once()

	result, err := svc.ListApplicationsByUser(ctx, caller, req)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.Limit)
	mockRepo.AssertExpectations(t)
}

func TestApplicationService_ListApplicationsByUser_ForbiddenForOtherUser(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	caller := dto.Caller{ID: uuid.New(), Role: models.RoleUser}
	req := &dto.ListApplicationsByUserRequest{UserID: uuid.New()}

	result, err := svc.ListApplicationsByUser(ctx, caller, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "ListByUser")
}

func TestApplicationService_ListApplicationsByUser_AdminMayListAnyUser(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	caller := dto.Caller{ID: uuid.New(), Role: models.RoleAdmin}
	req := &dto.ListApplicationsByUserRequest{UserID: uuid.New()}

	expected := &dto.ApplicationListResult{Items: []models.Application{}, Total: 0}
	mockRepo.On("ListByUser", ctx, req).Return(expected, nil).Once()

	result, err := svc.ListApplicationsByUser(ctx, caller, req)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateApplication_ForbiddenLeavesRecordUntouched(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	appID := uuid.New()
	existing := &models.Application{
		ID:        appID,
		OwnerID:   uuid.New(),
		Company:   "Acme",
		RoleTitle: "Backend Engineer",
		Status:    models.ApplicationStatusApplied,
	}
	caller := dto.Caller{ID: uuid.New(), Role: models.RoleUser}
	req := &dto.UpdateApplicationRequest{
		ID:     appID,
		Status: ptrAppStatus(models.ApplicationStatusOffer),
	}

	mockRepo.On("GetByID", ctx, &dto.GetApplicationByIDRequest{ID: appID}).
		Return(existing, nil).Once()

	app, err := svc.UpdateApplication(ctx, caller, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrForbidden)
	assert.Nil(t, app)
	mockRepo.AssertNotCalled(t, "Update")
	mockRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateApplication_OwnerSuccess(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	appID := uuid.New()
	ownerID := uuid.New()
	existing := &models.Application{
		ID:        appID,
		OwnerID:   ownerID,
		Company:   "Acme",
		RoleTitle: "Backend Engineer",
		Status:    models.ApplicationStatusApplied,
	}
	caller := dto.Caller{ID: ownerID, Role: models.RoleUser}
	req := &dto.UpdateApplicationRequest{
		ID:     appID,
		Status: ptrAppStatus(models.ApplicationStatusInterview),
	}
	updated := &models.Application{
		ID:        appID,
		OwnerID:   ownerID,
		Company:   "Acme",
		RoleTitle: "Backend Engineer",
		Status:    models.ApplicationStatusInterview,
	}

	mockRepo.On("GetByID", ctx, &dto.GetApplicationByIDRequest{ID: appID}).
		Return(existing, nil).Once()
	mockRepo.On("Update", ctx, req).Return(updated, nil).Once()

	app, err := svc.UpdateApplication(ctx, caller, req)

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusInterview, app.Status)
	mockRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateApplication_MergedDateRule(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	appID := uuid.New()
	ownerID := uuid.New()
	deadline := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Application{
		ID:           appID,
		OwnerID:      ownerID,
		Company:      "Acme",
		RoleTitle:    "Backend Engineer",
		Status:       models.ApplicationStatusApplied,
		DeadlineDate: ptrTime(deadline),
	}
	caller := dto.Caller{ID: ownerID, Role: models.RoleUser}
	req := &dto.UpdateApplicationRequest{
		ID:            appID,
		InterviewDate: ptrTime(deadline.Add(-time.Hour)),
	}

	mockRepo.On("GetByID", ctx, &dto.GetApplicationByIDRequest{ID: appID}).
		Return(existing, nil).Once()

	app, err := svc.UpdateApplication(ctx, caller, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Nil(t, app)
	mockRepo.AssertNotCalled(t, "Update")
	mockRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateApplicationStatus_NotFound(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	appID := uuid.New()
	caller := dto.Caller{ID: uuid.New(), Role: models.RoleUser}
	req := &dto.UpdateApplicationStatusRequest{
		ID:     appID,
		Status: models.ApplicationStatusRejected,
	}

	mockRepo.On("GetByID", ctx, &dto.GetApplicationByIDRequest{ID: appID}).
		Return(nil, storage.ErrNotFound).Once()

	app, err := svc.UpdateApplicationStatus(ctx, caller, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, app)
	mockRepo.AssertExpectations(t)
}

func TestApplicationService_UpdateApplicationStatus_AdminBypassesOwnership(t *testing.T) {
	ctx, svc, mockRepo := setupApplicationServiceTest()

	appID := uuid.New()
	existing := &models.Application{
		ID:        appID,
		OwnerID:   uuid.New(),
		Company:   "Acme",
		RoleTitle: "Backend Engineer",
		Status:    models.ApplicationStatusApplied,
	}
	caller := dto.Caller{ID: uuid.New(), Role: models.RoleAdmin}
	req := &dto.UpdateApplicationStatusRequest{
		ID:     appID,
		Status: models.ApplicationStatusOffer,
	}
	updated := &models.Application{
		ID:      appID,
		OwnerID: existing.OwnerID,
		Status:  models.ApplicationStatusOffer,
	}

	mockRepo.On("GetByID", ctx, &dto.GetApplicationByIDRequest{ID: appID}).
		Return(existing, nil).Once()
	mockRepo.On("UpdateStatus", ctx, req).Return(updated, nil).Once()

	app, err := svc.UpdateApplicationStatus(ctx, caller, req)

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusOffer, app.Status)
	mockRepo.AssertExpectations(t)
}
