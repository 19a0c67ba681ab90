package services_test

import (
	"context"
	"testing"

	"jobtrack-api/internal/mocks"
	"jobtrack-api/internal/models"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSettingsServiceTest() (context.Context, services.SettingsService, *mocks.MockSettingsRepository) {
	mockRepo := new(mocks.MockSettingsRepository)
	svc := services.NewSettingsService(mockRepo)
	ctx := context.Background()
	return ctx, svc, mockRepo
}

func TestSettingsService_GetSettings_NotFound(t *testing.T) {
	ctx, svc, mockRepo := setupSettingsServiceTest()

	req := &dto.GetSettingsRequest{Username: "jordan"}
	mockRepo.On("GetByUsername", ctx, req).Return(nil, storage.ErrNotFound).Once()

	settings, err := svc.GetSettings(ctx, req)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, settings)
	mockRepo.AssertExpectations(t)
}

func TestSettingsService_UpsertSettings_Success(t *testing.T) {
	ctx, svc, mockRepo := setupSettingsServiceTest()

	dark := true
	req := &dto.UpsertSettingsRequest{
		Username: "jordan",
		DarkMode: &dark,
	}
	expected := &models.Settings{
		Username:               "jordan",
		DarkMode:               true,
		EmailNotifications:     true,
		NotificationsFrequency: models.FrequencyDaily,
	}

	mockRepo.On("Upsert", ctx, req).Return(expected, nil).Once()

	settings, err := svc.UpsertSettings(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expected, settings)
	mockRepo.AssertExpectations(t)
}
