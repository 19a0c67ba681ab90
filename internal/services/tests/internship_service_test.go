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

// Helper to create a pointer to a float64
func ptrFloat64(f float64) *float64 { return &f }

func setupInternshipServiceTest() (context.Context, services.InternshipService, *mocks.MockInternshipRepository) {
	mockRepo := new(mocks.MockInternshipRepository)
	svc := services.NewInternshipService(mockRepo)
	ctx := context.Background()
	return ctx, svc, mockRepo
}

func TestInternshipService_CreateInternship_Success(t *testing.T) {
	ctx, svc, mockRepo := setupInternshipServiceTest()

	posterID := uuid.New()
	req := &dto.CreateInternshipRequest{
		PostedBy: posterID,
		Title:    "Summer Intern",
		Company:  "Acme",
	}
	expected := &models.Internship{
		ID:       uuid.New(),
		PostedBy: posterID,
		Title:    req.Title,
		Company:  req.Company,
		Status:   models.InternshipStatusOpen,
	}

	mockRepo.On("Create", ctx, req).Return(expected, nil).Once()

	in, err := svc.CreateInternship(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, in)
	mockRepo.AssertExpectations(t)
}

func TestInternshipService_ListInternships_RejectsInvertedStipendRange(t *testing.T) {
	ctx, svc, mockRepo := setupInternshipServiceTest()

	req := &dto.ListInternshipsRequest{
		StipendMin: ptrFloat64(2000),
		StipendMax: ptrFloat64(500),
	}

	result, err := svc.ListInternships(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "List")
}

func TestInternshipService_ListInternships_NormalizesPagination(t *testing.T) {
	ctx, svc, mockRepo := setupInternshipServiceTest()

	req := &dto.ListInternshipsRequest{Page: -3, Limit: 999}
	expected := &dto.InternshipListResult{Items: []models.Internship{}, Total: 0}
	mockRepo.On("List", ctx, req).Return(expected, nil).Once()

	result, err := svc.ListInternships(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 100, req.Limit)
	assert.Equal(t, "-createdAt", req.Sort)
	mockRepo.AssertExpectations(t)
}

func TestInternshipService_UpdateInternship_NotFound(t *testing.T) {
	ctx, svc, mockRepo := setupInternshipServiceTest()

	req := &dto.UpdateInternshipRequest{ID: uuid.New()}
	mockRepo.On("Update", ctx, req).Return(nil, storage.ErrNotFound).Once()

	in, err := svc.UpdateInternship(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, in)
	mockRepo.AssertExpectations(t)
}
