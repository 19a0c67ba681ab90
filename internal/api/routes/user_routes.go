// internal/api/routes/user_routes.go
package routes

import (
	"jobtrack-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to user accounts.
// It applies the provided authentication middleware to all user routes.
func RegisterUserRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api)
	userHandler handlers.UserHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("", userHandler.GetUsers)
		users.GET("/:id", userHandler.GetUserByID)
		users.PUT("/:id", userHandler.UpdateUser)
	}
}
