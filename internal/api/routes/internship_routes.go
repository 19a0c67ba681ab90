// internal/api/routes/internship_routes.go
package routes

import (
	"jobtrack-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInternshipRoutes registers all routes related to internship
// postings. Every route requires an authenticated caller, but reads and
// updates are not owner-scoped.
func RegisterInternshipRoutes(
	rg *gin.RouterGroup,
	internshipHandler handlers.InternshipHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	rg.Use(authMiddleware)
	{
		rg.POST("", internshipHandler.CreateInternship)
		rg.GET("", internshipHandler.ListInternships)
		rg.GET("/:id", internshipHandler.GetInternshipByID)
		rg.PUT("/:id", internshipHandler.UpdateInternship)
	}
}
