package services

import (
	"context"
	"log"

	"jobtrack-api/internal/models"
	"jobtrack-api/internal/storage"
	"jobtrack-api/internal/transport/dto"
)

type settingsService struct {
	settingsRepo storage.SettingsRepository
}

// NewSettingsService creates a new instance of SettingsService.
func NewSettingsService(settingsRepo storage.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context, req *dto.GetSettingsRequest) (*models.Settings, error) {
	settings, err := s.settingsRepo.GetByUsername(ctx, req)
	if err != nil {
		log.Printf("SettingsService: Error getting settings for %s: %v", req.Username, err)
		return nil, mapRepoError(err, "getting settings")
	}
	return settings, nil
}

func (s *settingsService) UpsertSettings(ctx context.Context, req *dto.UpsertSettingsRequest) (*models.Settings, error) {
	settings, err := s.settingsRepo.Upsert(ctx, req)
	if err != nil {
		log.Printf("SettingsService: Error saving settings for %s: %v", req.Username, err)
		return nil, mapRepoError(err, "saving settings")
	}
	return settings, nil
}
