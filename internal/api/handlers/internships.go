// internal/api/handlers/internships.go
package handlers

import (
	"net/http"

	"jobtrack-api/internal/api/middleware"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InternshipHandler holds dependencies for posting operations.
type InternshipHandler struct {
	service   services.InternshipService
	validator *validator.Validate
}

// NewInternshipHandler creates a new InternshipHandler.
func NewInternshipHandler(service services.InternshipService, validate *validator.Validate) *InternshipHandler {
	return &InternshipHandler{
		service:   service,
		validator: validate,
	}
}

// CreateInternship godoc
// @Summary      Post an internship
// @Description  Creates an internship posting. The poster is taken from auth context.
// @Tags         internships
// @Accept       json
// @Produce      json
// @Param        internship body      dto.CreateInternshipRequest true  "Posting details"
// @Success      201 {object}  map[string]interface{} "Internship created"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /internships [post]
// @Security     BearerAuth
func (h *InternshipHandler) CreateInternship(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req dto.CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	req.PostedBy = identity.ID

	created, err := h.service.CreateInternship(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Internship")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListInternships godoc
// @Summary      List internships
// @Description  Retrieves a filtered, sorted page of postings. Listing is global, not owner-scoped.
// @Tags         internships
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(10)
// @Param        status query string false "Status filter"
// @Param        company query string false "Company filter (case-insensitive)"
// @Param        q query string false "Free-text search"
// @Param        stipendMin query number false "Minimum stipend"
// @Param        stipendMax query number false "Maximum stipend"
// @Param        sort query string false "Sort field, '-' prefix for descending" default(-createdAt)
// @Success      200 {object}  map[string]interface{} "Page of internships"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /internships [get]
// @Security     BearerAuth
func (h *InternshipHandler) ListInternships(c *gin.Context) {
	var req dto.ListInternshipsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error(), nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}
	req.Normalize()

	result, err := h.service.ListInternships(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Internship")
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

// GetInternshipByID godoc
// @Summary      Get an internship
// @Description  Retrieves one posting by id. Postings are globally readable.
// @Tags         internships
// @Produce      json
// @Param        id path      string true  "Internship ID" Format(uuid)
// @Success      200 {object}  map[string]interface{} "Posting"
// @Failure      400 {object}  map[string]interface{} "Invalid ID format"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      404 {object}  map[string]interface{} "Internship Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /internships/{id} [get]
// @Security     BearerAuth
func (h *InternshipHandler) GetInternshipByID(c *gin.Context) {
	internshipID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	req := dto.GetInternshipByIDRequest{ID: internshipID}
	in, err := h.service.GetInternshipByID(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Internship")
		return
	}

	c.JSON(http.StatusOK, in)
}

// UpdateInternship godoc
// @Summary      Update an internship
// @Description  Applies a whitelisted partial update to a posting. Any authenticated user may update.
// @Tags         internships
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Internship ID" Format(uuid)
// @Param        internship body      dto.UpdateInternshipRequest true  "Fields to change"
// @Success      200 {object}  map[string]interface{} "Internship updated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      404 {object}  map[string]interface{} "Internship Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /internships/{id} [put]
// @Security     BearerAuth
func (h *InternshipHandler) UpdateInternship(c *gin.Context) {
	internshipID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	req.ID = internshipID
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	updated, err := h.service.UpdateInternship(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Internship")
		return
	}

	c.JSON(http.StatusOK, updated)
}
