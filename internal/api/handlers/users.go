// internal/api/handlers/users.go
package handlers

import (
	"net/http"

	"jobtrack-api/internal/api/middleware"
	"jobtrack-api/internal/models"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// UserHandler holds dependencies for account operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// GetUsers godoc
// @Summary      List accounts
// @Description  Retrieves every account. Admin only.
// @Tags         users
// @Produce      json
// @Success      200 {array}   dto.UserResponse "Accounts"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/users [get]
// @Security     BearerAuth
func (h *UserHandler) GetUsers(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	if identity.Role != models.RoleAdmin {
		respondError(c, http.StatusForbidden, "You do not have access to this resource", nil)
		return
	}

	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		mapServiceError(c, err, "User")
		return
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetUserByID godoc
// @Summary      Get an account
// @Description  Retrieves one account by id. Self or admin only.
// @Tags         users
// @Produce      json
// @Param        id path      string true  "User ID" Format(uuid)
// @Success      200 {object}  dto.UserResponse "Account"
// @Failure      400 {object}  map[string]interface{} "Invalid ID format"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden"
// @Failure      404 {object}  map[string]interface{} "User Not Found"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/users/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) GetUserByID(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if userID != identity.ID && identity.Role != models.RoleAdmin {
		respondError(c, http.StatusForbidden, "You do not have access to this resource", nil)
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), &dto.GetUserByIdRequest{ID: userID})
	if err != nil {
		mapServiceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateUser godoc
// @Summary      Update the caller's profile
// @Description  Changes name and email only. Role and password never travel through this endpoint.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path      string true  "User ID" Format(uuid)
// @Param        profile body      dto.UpdateUserProfileRequest true  "Fields to change"
// @Success      200 {object}  dto.UserResponse "Account updated"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]interface{} "Unauthorized"
// @Failure      403 {object}  map[string]interface{} "Forbidden"
// @Failure      404 {object}  map[string]interface{} "User Not Found"
// @Failure      409 {object}  map[string]interface{} "Email already registered"
// @Failure      500 {object}  map[string]interface{} "Internal Server Error"
// @Router       /api/users/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) UpdateUser(c *gin.Context) {
	identity, err := middleware.GetIdentity(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	userID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if userID != identity.ID && identity.Role != models.RoleAdmin {
		respondError(c, http.StatusForbidden, "You do not have access to this resource", nil)
		return
	}

	var req dto.UpdateUserProfileRequest
	if err := bindJSONStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	req.ID = userID
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Validation failed", FormatValidationErrors(err))
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err, "User")
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
