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

func setupJobRouter(svc services.JobService, callerID uuid.UUID) *gin.Engine {
	router := gin.New()
	jobHandler := handlers.NewJobHandler(svc, validator.New())
	routes.RegisterJobRoutes(router.Group("/api"), jobHandler, identityInjector(callerID, models.RoleUser))
	return router
}

func TestJobHandler_CreateJob_SetsOwnerFromIdentity(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, callerID)

	created := &models.Job{
		ID:       uuid.New(),
		PostedBy: callerID,
		Title:    "Backend Engineer",
		Company:  "Acme",
		Status:   models.JobStatusApplied,
	}

	mockSvc.On("CreateJob", mock.Anything, mock.MatchedBy(func(req *dto.CreateJobRequest) bool {
		return req.PostedBy == callerID && req.Title == "Backend Engineer"
	})).Return(created, nil).Once()

	w := performRequest(t, router, http.MethodPost, "/api/jobs", gin.H{
		"title":   "Backend Engineer",
		"company": "Acme",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	require.NotNil(t, body["data"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_CreateJob_MissingTitle(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	w := performRequest(t, router, http.MethodPost, "/api/jobs", gin.H{
		"company": "Acme",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	mockSvc.AssertNotCalled(t, "CreateJob")
}

func TestJobHandler_CreateJob_Duplicate(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	mockSvc.On("CreateJob", mock.Anything, mock.Anything).
		Return(nil, services.ErrDuplicate).Once()

	w := performRequest(t, router, http.MethodPost, "/api/jobs", gin.H{
		"title":   "Backend Engineer",
		"company": "Acme",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_ListJobs_MetaPages(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, callerID)

	result := &dto.JobListResult{
		Jobs:  []models.Job{{ID: uuid.New(), PostedBy: callerID, Title: "A", Company: "Acme"}},
		Total: 250,
	}
	mockSvc.On("ListJobs", mock.Anything, mock.MatchedBy(func(req *dto.ListJobsRequest) bool {
		return req.OwnerID == callerID
	})).Return(result, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/api/jobs?limit=100", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	meta, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(250), meta["total"])
	assert.Equal(t, float64(100), meta["limit"])
	assert.Equal(t, float64(3), meta["pages"])
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, "-dateAdded", meta["sort"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_ListJobs_EmptyPage(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	mockSvc.On("ListJobs", mock.Anything, mock.Anything).
		Return(&dto.JobListResult{Jobs: []models.Job{}, Total: 0}, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/api/jobs", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data, ok := body["data"].([]interface{})
	require.True(t, ok, "data must be an array, not null")
	assert.Empty(t, data)
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, float64(0), meta["pages"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_ListJobs_RejectsBadStatus(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	w := performRequest(t, router, http.MethodGet, "/api/jobs?status=bogus", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "ListJobs")
}

func TestJobHandler_GetJobByID_NotFound(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	mockSvc.On("GetJobByID", mock.Anything, mock.Anything).
		Return(nil, services.ErrNotFound).Once()

	w := performRequest(t, router, http.MethodGet, "/api/jobs/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Job not found", body["error"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_GetJobByID_InvalidID(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	w := performRequest(t, router, http.MethodGet, "/api/jobs/not-a-uuid", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "GetJobByID")
}

func TestJobHandler_UpdateJob_RejectsUnknownFields(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	w := performRawRequest(t, router, http.MethodPut, "/api/jobs/"+uuid.NewString(),
		`{"title":"New Title","unexpected":"field"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "UpdateJob")
}

func TestJobHandler_UpdateJob_Success(t *testing.T) {
	callerID := uuid.New()
	jobID := uuid.New()
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, callerID)

	updated := &models.Job{
		ID:       jobID,
		PostedBy: callerID,
		Title:    "Senior Backend Engineer",
		Company:  "Acme",
		Status:   models.JobStatusInterview,
	}
	mockSvc.On("UpdateJob", mock.Anything, mock.MatchedBy(func(req *dto.UpdateJobRequest) bool {
		return req.ID == jobID && req.OwnerID == callerID && req.Title != nil
	})).Return(updated, nil).Once()

	w := performRequest(t, router, http.MethodPut, "/api/jobs/"+jobID.String(), gin.H{
		"title":  "Senior Backend Engineer",
		"status": "interview",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_DeleteJob_Success(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	mockSvc.On("DeleteJob", mock.Anything, mock.Anything).Return(nil).Once()

	w := performRequest(t, router, http.MethodDelete, "/api/jobs/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Job deleted", body["message"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_DeleteAllJobs_ReportsCount(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	mockSvc.On("DeleteAllJobs", mock.Anything, mock.Anything).Return(4, nil).Once()

	w := performRequest(t, router, http.MethodDelete, "/api/jobs", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(4), body["deletedCount"])
	mockSvc.AssertExpectations(t)
}

func TestJobHandler_GetJobStats_Success(t *testing.T) {
	mockSvc := new(MockJobService)
	router := setupJobRouter(mockSvc, uuid.New())

	stats := &models.JobStats{Total: 10, Applied: 4, Interview: 2, Pending: 3, Offer: 1}
	mockSvc.On("GetJobStats", mock.Anything, mock.Anything).Return(stats, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/api/jobs/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(10), data["total"])
	assert.Equal(t, float64(3), data["pending"])
	mockSvc.AssertExpectations(t)
}
