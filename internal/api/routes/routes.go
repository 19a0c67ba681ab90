// internal/api/routes/routes.go
package routes

import (
	"log"
	"net/http"
	"time"

	"jobtrack-api/internal/api/handlers"
	"jobtrack-api/internal/api/middleware"
	"jobtrack-api/internal/app"
	"jobtrack-api/internal/services"
	"jobtrack-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	applicationRepo := postgres.NewApplicationRepo(app.DBPool)
	internshipRepo := postgres.NewInternshipRepo(app.DBPool)
	settingsRepo := postgres.NewSettingsRepo(app.DBPool)

	// --- Services ---
	authService := services.NewAuthService(userRepo, app.TokenManager, app.GoogleVerifier)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(applicationRepo)
	internshipService := services.NewInternshipService(internshipRepo)
	settingsService := services.NewSettingsService(settingsRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, app.Validator)
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	internshipHandler := handlers.NewInternshipHandler(internshipService, app.Validator)
	settingsHandler := handlers.NewSettingsHandler(settingsService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.RequireAuth(app.TokenManager, userRepo)

	// Rate limiting only bites in production; local development stays
	// unthrottled.
	authLimiter := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	apiLimiter := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if app.Config.IsProduction() && app.RedisClient != nil {
		authLimiter = middleware.RateLimit(app.RedisClient, "auth", 20, time.Minute)
		apiLimiter = middleware.RateLimit(app.RedisClient, "api", 300, time.Minute)
	}

	// --- Register Resource Routes ---
	RegisterAuthRoutes(router.Group("/auth", authLimiter), authHandler, authMiddleware)

	api := router.Group("/api", apiLimiter)
	RegisterJobRoutes(api, jobHandler, authMiddleware)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)
	RegisterUserRoutes(api, userHandler, authMiddleware)

	RegisterInternshipRoutes(router.Group("/internships", apiLimiter), internshipHandler, authMiddleware)
	RegisterSettingsRoutes(router.Group("/settings", apiLimiter), settingsHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	// Unknown routes get the structured 404 body instead of gin's default.
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Route not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
