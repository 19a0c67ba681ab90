// internal/api/routes/application_routes.go
package routes

import (
	"jobtrack-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications.
// It applies the provided authentication middleware to all application routes.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api)
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.POST("", applicationHandler.CreateApplication)
		applications.GET("/user/:userId", applicationHandler.ListApplicationsByUser)
		applications.PUT("/:id", applicationHandler.UpdateApplication)
		applications.PUT("/:id/status", applicationHandler.UpdateApplicationStatus)
	}
}
