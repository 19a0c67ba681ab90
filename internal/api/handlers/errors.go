package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobtrack-api/internal/services"

	"github.com/gin-gonic/gin"
)

// exposeErrorDetails controls whether internal error text reaches clients.
// Disabled in production at startup.
var exposeErrorDetails = true

// SetErrorDetailExposure toggles internal-error text in 500 responses.
func SetErrorDetailExposure(expose bool) {
	exposeErrorDetails = expose
}

// respondError writes the error envelope. details is omitted when nil.
func respondError(c *gin.Context, status int, message string, details interface{}) {
	body := gin.H{"success": false, "error": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// mapServiceError translates service sentinel errors into the status code
// and envelope the API promises. resource names the thing being operated on
// for the 404 message.
func mapServiceError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, services.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Unauthorized", nil)
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "You do not have access to this resource", nil)
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, resource+" not found", nil)
	case errors.Is(err, services.ErrDuplicate):
		respondError(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, services.ErrConflict):
		respondError(c, http.StatusConflict, err.Error(), nil)
	default:
		log.Printf("Unhandled service error (%s): %v", resource, err)
		if exposeErrorDetails {
			respondError(c, http.StatusInternalServerError, "Internal server error", err.Error())
		} else {
			respondError(c, http.StatusInternalServerError, "Internal server error", nil)
		}
	}
}
