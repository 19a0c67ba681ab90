package handlers_test

import (
	"net/http"
	"testing"

	"jobtrack-api/internal/api/handlers"
	"jobtrack-api/internal/api/routes"
	"jobtrack-api/internal/models"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupSettingsRouter(svc services.SettingsService) *gin.Engine {
	router := gin.New()
	settingsHandler := handlers.NewSettingsHandler(svc, validator.New())
	routes.RegisterSettingsRoutes(router.Group("/settings"), settingsHandler, identityInjector(uuid.New(), models.RoleUser))
	return router
}

func TestSettingsHandler_GetSettings_Success(t *testing.T) {
	mockSvc := new(MockSettingsService)
	router := setupSettingsRouter(mockSvc)

	settings := &models.Settings{
		Username:               "jordan@example.com",
		DarkMode:               true,
		EmailNotifications:     false,
		NotificationsFrequency: models.FrequencyWeekly,
	}
	mockSvc.On("GetSettings", mock.Anything, &dto.GetSettingsRequest{Username: "jordan@example.com"}).
		Return(settings, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/settings/jordan@example.com", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "jordan@example.com", body["username"])
	assert.Equal(t, true, body["darkMode"])
	assert.Equal(t, "weekly", body["notificationsFrequency"])
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandler_GetSettings_NotFound(t *testing.T) {
	mockSvc := new(MockSettingsService)
	router := setupSettingsRouter(mockSvc)

	mockSvc.On("GetSettings", mock.Anything, mock.Anything).
		Return(nil, services.ErrNotFound).Once()

	w := performRequest(t, router, http.MethodGet, "/settings/nobody@example.com", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Settings not found", body["error"])
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandler_GetSettings_UsernameTooShort(t *testing.T) {
	mockSvc := new(MockSettingsService)
	router := setupSettingsRouter(mockSvc)

	w := performRequest(t, router, http.MethodGet, "/settings/ab", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetSettings")
}

func TestSettingsHandler_UpsertSettings_Success(t *testing.T) {
	mockSvc := new(MockSettingsService)
	router := setupSettingsRouter(mockSvc)

	saved := &models.Settings{
		Username:               "jordan@example.com",
		DarkMode:               true,
		EmailNotifications:     true,
		NotificationsFrequency: models.FrequencyDaily,
	}
	mockSvc.On("UpsertSettings", mock.Anything, mock.MatchedBy(func(req *dto.UpsertSettingsRequest) bool {
		return req.Username == "jordan@example.com" && req.DarkMode != nil && *req.DarkMode
	})).Return(saved, nil).Once()

	w := performRequest(t, router, http.MethodPut, "/settings/jordan@example.com", gin.H{
		"darkMode": true,
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["darkMode"])
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandler_UpsertSettings_PartialLeavesOmittedFieldsUnset(t *testing.T) {
	mockSvc := new(MockSettingsService)
	router := setupSettingsRouter(mockSvc)

	// Previously stored dark mode survives a frequency-only update.
	saved := &models.Settings{
		Username:               "jordan@example.com",
		DarkMode:               true,
		EmailNotifications:     true,
		NotificationsFrequency: models.FrequencyWeekly,
	}
	mockSvc.On("UpsertSettings", mock.Anything, mock.MatchedBy(func(req *dto.UpsertSettingsRequest) bool {
		return req.Username == "jordan@example.com" &&
			req.NotificationsFrequency != nil && *req.NotificationsFrequency == models.FrequencyWeekly &&
			req.DarkMode == nil && req.EmailNotifications == nil
	})).Return(saved, nil).Once()

	w := performRequest(t, router, http.MethodPut, "/settings/jordan@example.com", gin.H{
		"notificationsFrequency": "weekly",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["darkMode"])
	assert.Equal(t, "weekly", body["notificationsFrequency"])
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandler_GetSettings_LongEmailUsername(t *testing.T) {
	mockSvc := new(MockSettingsService)
	router := setupSettingsRouter(mockSvc)

	username := "a.rather.long.address.for.testing@subdomain.example-company.com"
	settings := &models.Settings{
		Username:               username,
		NotificationsFrequency: models.FrequencyDaily,
	}
	mockSvc.On("GetSettings", mock.Anything, &dto.GetSettingsRequest{Username: username}).
		Return(settings, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/settings/"+username, nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, username, body["username"])
	mockSvc.AssertExpectations(t)
}

func TestSettingsHandler_UpsertSettings_BadFrequency(t *testing.T) {
	mockSvc := new(MockSettingsService)
	router := setupSettingsRouter(mockSvc)

	w := performRequest(t, router, http.MethodPut, "/settings/jordan@example.com", gin.H{
		"notificationsFrequency": "hourly",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	mockSvc.AssertNotCalled(t, "UpsertSettings")
}
