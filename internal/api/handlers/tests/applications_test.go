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

func setupApplicationRouter(svc services.ApplicationService, callerID uuid.UUID, role models.Role) *gin.Engine {
	router := gin.New()
	applicationHandler := handlers.NewApplicationHandler(svc, validator.New())
	routes.RegisterApplicationRoutes(router.Group("/api"), applicationHandler, identityInjector(callerID, role))
	return router
}

func TestApplicationHandler_CreateApplication_SetsOwnerFromIdentity(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockApplicationService)
	router := setupApplicationRouter(mockSvc, callerID, models.RoleUser)

	created := &models.Application{
		ID:        uuid.New(),
		OwnerID:   callerID,
		Company:   "Acme",
		RoleTitle: "Backend Engineer",
		Status:    models.ApplicationStatusApplied,
	}

	mockSvc.On("CreateApplication", mock.Anything, mock.MatchedBy(func(req *dto.CreateApplicationRequest) bool {
		return req.OwnerID == callerID && req.Company == "Acme"
	})).Return(created, nil).Once()

	w := performRequest(t, router, http.MethodPost, "/api/applications", gin.H{
		"company":   "Acme",
		"roleTitle": "Backend Engineer",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Acme", body["company"])
	mockSvc.AssertExpectations(t)
}

func TestApplicationHandler_ListApplicationsByUser_PageEnvelope(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockApplicationService)
	router := setupApplicationRouter(mockSvc, callerID, models.RoleUser)

	result := &dto.ApplicationListResult{
		Items: []models.Application{{ID: uuid.New(), OwnerID: callerID, Company: "Acme", RoleTitle: "Backend Engineer"}},
		Total: 41,
	}
	mockSvc.On("ListApplicationsByUser", mock.Anything, dto.Caller{ID: callerID, Role: models.RoleUser},
		mock.MatchedBy(func(req *dto.ListApplicationsByUserRequest) bool {
			return req.UserID == callerID
		})).Return(result, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/api/applications/user/"+callerID.String()+"?limit=20", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(41), body["total"])
	assert.Equal(t, float64(20), body["limit"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(3), body["totalPages"])
	items, ok := body["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
	mockSvc.AssertExpectations(t)
}

func TestApplicationHandler_ListApplicationsByUser_Forbidden(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()
	mockSvc := new(MockApplicationService)
	router := setupApplicationRouter(mockSvc, callerID, models.RoleUser)

	mockSvc.On("ListApplicationsByUser", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, services.ErrForbidden).Once()

	w := performRequest(t, router, http.MethodGet, "/api/applications/user/"+otherID.String(), nil)

	require.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "You do not have access to this resource", body["error"])
	mockSvc.AssertExpectations(t)
}

func TestApplicationHandler_UpdateApplication_RejectsUnknownFields(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplicationRouter(mockSvc, uuid.New(), models.RoleUser)

	w := performRawRequest(t, router, http.MethodPut, "/api/applications/"+uuid.NewString(),
		`{"company":"Acme","ownerId":"`+uuid.NewString()+`"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "UpdateApplication")
}

func TestApplicationHandler_UpdateApplicationStatus_BadStatus(t *testing.T) {
	mockSvc := new(MockApplicationService)
	router := setupApplicationRouter(mockSvc, uuid.New(), models.RoleUser)

	w := performRequest(t, router, http.MethodPut, "/api/applications/"+uuid.NewString()+"/status", gin.H{
		"status": "ghosted",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "UpdateApplicationStatus")
}

func TestApplicationHandler_UpdateApplicationStatus_Success(t *testing.T) {
	callerID := uuid.New()
	appID := uuid.New()
	mockSvc := new(MockApplicationService)
	router := setupApplicationRouter(mockSvc, callerID, models.RoleUser)

	updated := &models.Application{
		ID:      appID,
		OwnerID: callerID,
		Status:  models.ApplicationStatusOffer,
	}
	mockSvc.On("UpdateApplicationStatus", mock.Anything, dto.Caller{ID: callerID, Role: models.RoleUser},
		mock.MatchedBy(func(req *dto.UpdateApplicationStatusRequest) bool {
			return req.ID == appID && req.Status == models.ApplicationStatusOffer
		})).Return(updated, nil).Once()

	w := performRequest(t, router, http.MethodPut, "/api/applications/"+appID.String()+"/status", gin.H{
		"status": "offer",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "offer", body["status"])
	mockSvc.AssertExpectations(t)
}
