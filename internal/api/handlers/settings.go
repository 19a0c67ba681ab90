// internal/api/handlers/settings.go
package handlers

import (
	"net/http"

	"jobtrack-api/internal/services"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SettingsHandler holds dependencies for per-user settings operations.
type SettingsHandler struct {
	service   services.SettingsService
	validator *validator.Validate
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service services.SettingsService, validate *validator.Validate) *SettingsHandler {
	return &SettingsHandler{
		service:   service,
		validator: validate,
	}
}

// GetSettings godoc
// @Summary      Get settings for a username
// @Description  Retrieves the settings document for one username.
// @Tags         settings
// @Produce      json
// @Param        username path string true "Username (account email)"
// @Success      200 {object}  map[string]interface{} "Settings"
// @Failure      400 {object}  map[string]interface{} "Invalid username"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      404 {object}  map[string]interface{} "Settings Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /settings/{username} [get]
// @Security     BearerAuth
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	req := dto.GetSettingsRequest{Username: c.Param("username")}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	settings, err := h.service.GetSettings(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpsertSettings godoc
// @Summary      Save settings for a username
// @Description  Updates the settings document in place, creating it when absent.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        username path string true "Username (account email)"
// @Param        settings body      dto.UpsertSettingsRequest true  "Settings"
// @Success      200 {object}  map[string]interface{} "Settings saved"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /settings/{username} [put]
// @Security     BearerAuth
func (h *SettingsHandler) UpsertSettings(c *gin.Context) {
	var req dto.UpsertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	req.Username = c.Param("username")
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	settings, err := h.service.UpsertSettings(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}
