package handlers_test

import (
	"net/http"
	"net/http/httptest"
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

func setupAuthRouter(svc services.AuthService) *gin.Engine {
	router := gin.New()
	authHandler := handlers.NewAuthHandler(svc, validator.New())
	routes.RegisterAuthRoutes(router.Group("/auth"), authHandler, identityInjector(uuid.New(), models.RoleUser))
	return router
}

func sessionCookies(w *httptest.ResponseRecorder) map[string]string {
	cookies := map[string]string{}
	for _, c := range w.Result().Cookies() {
		cookies[c.Name] = c.Value
	}
	return cookies
}

func TestAuthHandler_Login_SetsSessionCookies(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	resp := &dto.AuthResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         &dto.UserResponse{ID: uuid.New(), Email: "jordan@example.com"},
	}
	mockSvc.On("Login", mock.Anything, &dto.LoginRequest{
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
	}).Return(resp, nil).Once()

	w := performRequest(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "jordan@example.com",
		"password": "hunter2hunter2",
	})

	require.Equal(t, http.StatusOK, w.Code)
	cookies := sessionCookies(w)
	assert.Equal(t, "access-token", cookies["token"])
	assert.Equal(t, "refresh-token", cookies["refreshToken"])
	body := decodeBody(t, w)
	assert.Equal(t, "access-token", body["accessToken"])
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	mockSvc.On("Login", mock.Anything, mock.Anything).
		Return(nil, services.ErrInvalidCredentials).Once()

	w := performRequest(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "jordan@example.com",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Invalid credentials", body["error"])
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	w := performRequest(t, router, http.MethodPost, "/auth/register", gin.H{
		"name":     "Jordan",
		"email":    "jordan@example.com",
		"password": "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Refresh_FromBody(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	mockSvc.On("Refresh", mock.Anything, &dto.RefreshRequest{RefreshToken: "refresh-token"}).
		Return("new-access-token", nil).Once()

	w := performRequest(t, router, http.MethodPost, "/auth/refresh", gin.H{
		"refreshToken": "refresh-token",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "new-access-token", body["accessToken"])
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Refresh_FromCookie(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	mockSvc.On("Refresh", mock.Anything, &dto.RefreshRequest{RefreshToken: "cookie-token"}).
		Return("new-access-token", nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "cookie-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	w := performRequest(t, router, http.MethodPost, "/auth/refresh", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Refresh token required", body["error"])
	mockSvc.AssertNotCalled(t, "Refresh")
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	w := performRequest(t, router, http.MethodPost, "/auth/logout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	}
}

func TestAuthHandler_Me_ReturnsCurrentAccount(t *testing.T) {
	mockSvc := new(MockAuthService)
	router := setupAuthRouter(mockSvc)

	user := &models.User{ID: uuid.New(), Name: "Caller", Email: "caller@example.com", Role: models.RoleUser}
	mockSvc.On("Me", mock.Anything, mock.Anything).Return(user, nil).Once()

	w := performRequest(t, router, http.MethodGet, "/auth/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	userBody, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "caller@example.com", userBody["email"])
	mockSvc.AssertExpectations(t)
}
