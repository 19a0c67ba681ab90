// internal/api/handlers/auth.go
package handlers

import (
	"net/http"

	"jobtrack-api/internal/api/middleware"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const refreshCookie = "refreshToken"

// AuthHandler holds dependencies for login and session operations.
type AuthHandler struct {
	service   services.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validate,
	}
}

// GoogleLogin godoc
// @Summary      Login with a Google credential
// @Description  Verifies the posted Google ID token and issues the access/refresh token pair, creating or linking the account as needed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credential body      dto.GoogleLoginRequest true  "Google ID token"
// @Success      200 {object}  dto.AuthResponse "Token pair and account"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Invalid credential"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	resp, err := h.service.GoogleLogin(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Account")
		return
	}

	h.setSessionCookies(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary      Register a local account
// @Description  Creates an account with email and password and issues the token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account body      dto.RegisterRequest true  "Account details"
// @Success      201 {object}  dto.AuthResponse "Token pair and account"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      409 {object}  map[string]interface{} "Email already registered"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Account")
		return
	}

	h.setSessionCookies(c, resp)
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Login with email and password
// @Description  Checks local credentials and issues the token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Email and password"
// @Success      200 {object}  dto.AuthResponse "Token pair and account"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Invalid credentials"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Account")
		return
	}

	h.setSessionCookies(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary      Refresh the access token
// @Description  Exchanges a valid refresh token (body or cookie) for a fresh access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body      dto.RefreshRequest false  "Refresh token"
// @Success      200 {object}  map[string]interface{} "New access token"
// @Failure      401 {object}  map[string]interface{} "Invalid refresh token"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	// Body is optional; the cookie is the fallback.
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			req.RefreshToken = cookie
		}
	}
	if req.RefreshToken == "" {
		respondError(c, http.StatusUnauthorized, "Refresh token required", nil)
		return
	}

	accessToken, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "Account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "accessToken": accessToken})
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the session cookies. Tokens are stateless, so nothing is revoked server-side.
// @Tags         auth
// @Produce      json
// @Success      200 {object}  map[string]interface{} "Logged out"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// Me godoc
// @Summary      Current account
// @Description  Returns the caller's own account.
// @Tags         auth
// @Produce      json
// @Success      200 {object}  dto.UserResponse "Account"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	user, err := h.service.Me(c.Request.Context(), &dto.GetUserByIdRequest{ID: identity.ID})
	if err != nil {
		mapServiceError(c, err, "Account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": dto.NewUserResponse(user)})
}

func (h *AuthHandler) setSessionCookies(c *gin.Context, resp *dto.AuthResponse) {
	c.SetCookie("token", resp.AccessToken, 0, "/", "", false, true)
	c.SetCookie(refreshCookie, resp.RefreshToken, 0, "/", "", false, true)
}
