// internal/api/routes/auth_routes.go
package routes

import (
	"jobtrack-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login, registration, and session routes.
// Only /auth/me requires an authenticated caller.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	rg.POST("/google", authHandler.GoogleLogin)
	rg.POST("/register", authHandler.Register)
	rg.POST("/login", authHandler.Login)
	rg.POST("/refresh", authHandler.Refresh)
	rg.POST("/logout", authHandler.Logout)
	rg.GET("/me", authMiddleware, authHandler.Me)
}
