// internal/api/handlers/jobs.go
package handlers

import (
	"log"
	"net/http"

	"jobtrack-api/internal/api/middleware"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job-tracking operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Track a new job
// @Description  Creates a job-tracking entry owned by the caller. Owner is taken from auth context.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  map[string]interface{} "Job created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      409 {object}  map[string]interface{} "Duplicate pipeline entry"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		log.Printf("Error getting identity from context: %v", err)
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	req.PostedBy = identity.ID

	createdJob, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": createdJob})
}

// ListJobs godoc
// @Summary      List the caller's jobs
// @Description  Retrieves a filtered, sorted page of the caller's job entries.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(100)
// @Param        status query string false "Status filter"
// @Param        company query string false "Company filter (case-insensitive)"
// @Param        q query string false "Free-text search"
// @Param        sort query string false "Sort field, '-' prefix for descending" default(-dateAdded)
// @Success      200 {object}  map[string]interface{} "Page of jobs with meta"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid query parameters"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListJobs(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error(), nil)
		return
	}
	req.OwnerID = identity.ID
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}
	req.Normalize()

	result, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Job")
		return
	}

	pages := 0
	if result.Total > 0 {
		pages = (result.Total + req.Limit - 1) / req.Limit
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Jobs,
		"meta": dto.JobListMeta{
			Total: result.Total,
			Page:  req.Page,
			Limit: req.Limit,
			Pages: pages,
			Sort:  req.Sort,
		},
	})
}

// GetJobByID godoc
// @Summary      Get one of the caller's jobs
// @Description  Retrieves a job entry by id. Jobs owned by other users report not found.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  map[string]interface{} "Successfully retrieved job"
// @Failure      400 {object}  map[string]interface{} "Invalid ID format"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetJobByID(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	req := dto.GetJobByIDRequest{ID: jobID, OwnerID: identity.ID}
	job, err := h.service.GetJobByID(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

// GetJobStats godoc
// @Summary      Job pipeline stats
// @Description  Aggregates the caller's jobs by status into fixed buckets.
// @Tags         jobs
// @Produce      json
// @Success      200 {object}  map[string]interface{} "Status buckets"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/jobs/stats [get]
// @Security     BearerAuth
func (h *JobHandler) GetJobStats(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	stats, err := h.service.GetJobStats(c.Request.Context(), &dto.JobStatsRequest{OwnerID: identity.ID})
	if err != nil {
		mapServiceError(c, err, "Job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Applies a whitelisted partial update to one of the caller's job entries. Unknown fields are rejected.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true  "Fields to change"
// @Success      200 {object}  map[string]interface{} "Job updated successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      409 {object}  map[string]interface{} "Duplicate pipeline entry"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	req.ID = jobID
	req.OwnerID = identity.ID
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	updatedJob, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updatedJob})
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Removes one of the caller's job entries. A second delete reports not found.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  map[string]interface{} "Job deleted"
// @Failure      400 {object}  map[string]interface{} "Invalid ID format"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      404 {object}  map[string]interface{} "Job Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	req := dto.DeleteJobRequest{ID: jobID, OwnerID: identity.ID}
	if err := h.service.DeleteJob(c.Request.Context(), &req); err != nil {
		mapServiceError(c, err, "Job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Job deleted"})
}

// DeleteAllJobs godoc
// @Summary      Delete all of the caller's jobs
// @Description  Removes every job entry the caller owns and reports how many went.
// @Tags         jobs
// @Produce      json
// @Success      200 {object}  map[string]interface{} "Deleted count"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/jobs [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteAllJobs(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	deleted, err := h.service.DeleteAllJobs(c.Request.Context(), &dto.DeleteAllJobsRequest{OwnerID: identity.ID})
	if err != nil {
		mapServiceError(c, err, "Job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deletedCount": deleted})
}
