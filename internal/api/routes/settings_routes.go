// internal/api/routes/settings_routes.go
package routes

import (
	"jobtrack-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes registers the per-user settings routes. Settings
// are keyed by username rather than user id.
func RegisterSettingsRoutes(
	rg *gin.RouterGroup,
	settingsHandler handlers.SettingsHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	rg.Use(authMiddleware)
	{
		rg.GET("/:username", settingsHandler.GetSettings)
		rg.PUT("/:username", settingsHandler.UpsertSettings)
	}
}
