// internal/transport/dto/settings_dto.go
package dto

import "jobtrack-api/internal/models"

// GetSettingsRequest loads the settings document for one username.
// The username holds the account email, so the bound matches the
// practical email length limit.
type GetSettingsRequest struct {
	Username string `json:"-" validate:"required,min=3,max=254"`
}

// UpsertSettingsRequest updates (or creates) the settings document for one
// username. Omitted fields keep their stored values; on first write they
// fall back to the defaults.
type UpsertSettingsRequest struct {
	Username               string                         `json:"-" validate:"required,min=3,max=254"`
	DarkMode               *bool                          `json:"darkMode,omitempty"`
	EmailNotifications     *bool                          `json:"emailNotifications,omitempty"`
	NotificationsFrequency *models.NotificationsFrequency `json:"notificationsFrequency,omitempty" validate:"omitempty,oneof=immediately daily weekly never"`
}
