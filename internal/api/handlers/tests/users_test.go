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

func setupUserRouter(svc services.UserService, callerID uuid.UUID, role models.Role) *gin.Engine {
	router := gin.New()
	userHandler := handlers.NewUserHandler(svc, validator.New())
	routes.RegisterUserRoutes(router.Group("/api"), userHandler, identityInjector(callerID, role))
	return router
}

func TestUserHandler_GetUsers_AdminOnly(t *testing.T) {
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, uuid.New(), models.RoleUser)

	w := performRequest(t, router, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusForbidden, w.Code)
	mockSvc.AssertNotCalled(t, "GetAll")
}

func TestUserHandler_GetUsers_AdminSucceeds(t *testing.T) {
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, uuid.New(), models.RoleAdmin)

	users := []models.User{
		{ID: uuid.New(), Name: "Jordan", Email: "jordan@example.com", Role: models.RoleUser},
	}
	mockSvc.On("GetAll", mock.Anything).Return(users, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/api/users", nil)

	require.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_GetUserByID_SelfAllowed(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, callerID, models.RoleUser)

	user := &models.User{ID: callerID, Name: "Jordan", Email: "jordan@example.com", Role: models.RoleUser}
	mockSvc.On("GetByID", mock.Anything, &dto.GetUserByIdRequest{ID: callerID}).
		Return(user, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/api/users/"+callerID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "jordan@example.com", body["email"])
	// The password hash never appears in the response shape.
	_, leaked := body["password_hash"]
	assert.False(t, leaked)
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_GetUserByID_OtherUserForbidden(t *testing.T) {
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, uuid.New(), models.RoleUser)

	w := performRequest(t, router, http.MethodGet, "/api/users/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusForbidden, w.Code)
	mockSvc.AssertNotCalled(t, "GetByID")
}

func TestUserHandler_UpdateUser_Self(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, callerID, models.RoleUser)

	updated := &models.User{ID: callerID, Name: "New Name", Email: "jordan@example.com", Role: models.RoleUser}
	mockSvc.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(req *dto.UpdateUserProfileRequest) bool {
		return req.ID == callerID && req.Name != nil && *req.Name == "New Name"
	})).Return(updated, nil).Once()

	w := performRequest(t, router, http.MethodPut, "/api/users/"+callerID.String(), gin.H{
		"name": "New Name",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "New Name", body["name"])
	mockSvc.AssertExpectations(t)
}

func TestUserHandler_UpdateUser_RejectsRoleChange(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, callerID, models.RoleUser)

	// Role is not part of the update schema; unknown fields are rejected.
	w := performRawRequest(t, router, http.MethodPut, "/api/users/"+callerID.String(),
		`{"role":"admin"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "UpdateProfile")
}

func TestUserHandler_UpdateUser_DuplicateEmail(t *testing.T) {
	callerID := uuid.New()
	mockSvc := new(MockUserService)
	router := setupUserRouter(mockSvc, callerID, models.RoleUser)

	mockSvc.On("UpdateProfile", mock.Anything, mock.Anything).
		Return(nil, services.ErrDuplicate).Once()

	w := performRequest(t, router, http.MethodPut, "/api/users/"+callerID.String(), gin.H{
		"email": "taken@example.com",
	})

	require.Equal(t, http.StatusConflict, w.Code)
	mockSvc.AssertExpectations(t)
}
