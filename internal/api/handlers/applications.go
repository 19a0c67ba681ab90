// internal/api/handlers/applications.go
package handlers

import (
	"net/http"

	"jobtrack-api/internal/api/middleware"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

func callerFromContext(c *gin.Context) (dto.Caller, bool) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return dto.Caller{}, false
	}
	return dto.Caller{ID: identity.ID, Role: identity.Role}, true
}

// CreateApplication godoc
// @Summary      Create an application
// @Description  Records an application owned by the caller. Owner is taken from auth context.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.CreateApplicationRequest true  "Application details"
// @Success      201 {object}  map[string]interface{} "Application created"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	req.OwnerID = caller.ID

	created, err := h.service.CreateApplication(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Application")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListApplicationsByUser godoc
// @Summary      List one user's applications
// @Description  Retrieves a filtered, sorted page of a user's applications. Callers may only list their own unless they are an admin.
// @Tags         applications
// @Produce      json
// @Param        userId path string true "User ID" Format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(20)
// @Param        status query string false "Status filter"
// @Param        company query string false "Company filter (case-insensitive)"
// @Param        sortBy query string false "Sort field" default(createdAt)
// @Param        sortDir query string false "Sort direction" default(desc)
// @Success      200 {object}  map[string]interface{} "Page of applications"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/applications/user/{userId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicationsByUser(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req dto.ListApplicationsByUserRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error(), nil)
		return
	}
	req.UserID = userID
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}
	req.Normalize()

	result, err := h.service.ListApplicationsByUser(c.Request.Context(), caller, &req)
	if err != nil {
		mapServiceError(c, err, "Application")
		return
	}

	totalPages := 0
	if result.Total > 0 {
		totalPages = (result.Total + req.Limit - 1) / req.Limit
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      result.Items,
		"page":       req.Page,
		"limit":      req.Limit,
		"total":      result.Total,
		"totalPages": totalPages,
	})
}

// UpdateApplication godoc
// @Summary      Update an application
// @Description  Applies a whitelisted partial update. Owner or admin only; a non-owner leaves the record untouched.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        application body      dto.UpdateApplicationRequest true  "Fields to change"
// @Success      200 {object}  map[string]interface{} "Application updated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden"
// @Failure      404 {object}  map[string]interface{} "Application Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/applications/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	appID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	req.ID = appID
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	updated, err := h.service.UpdateApplication(c.Request.Context(), caller, &req)
	if err != nil {
		mapServiceError(c, err, "Application")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateApplicationStatus godoc
// @Summary      Move an application along the pipeline
// @Description  Sets the application status. Owner or admin only.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        status body      dto.UpdateApplicationStatusRequest true  "New status"
// @Success      200 {object}  map[string]interface{} "Application updated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden"
// @Failure      404 {object}  map[string]interface{} "Application Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		return
	}

	appID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	req.ID = appID
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	updated, err := h.service.UpdateApplicationStatus(c.Request.Context(), caller, &req)
	if err != nil {
		mapServiceError(c, err, "Application")
		return
	}

	c.JSON(http.StatusOK, updated)
}
