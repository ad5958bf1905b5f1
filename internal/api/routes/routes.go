package routes

import (
	"log"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create services
	userService := services.NewUserService(app.UserRepo, app.Config.JWT.Secret, app.Config.JWT.Expiration)
	adminService := services.NewAdminService(app.AdminRepo, app.Config.JWT.Secret, app.Config.JWT.Expiration)
	jobService := services.NewJobService(app.JobRepo, app.CompanyRepo, app.SkillRepo)
	applicationService := services.NewApplicationService(app.ApplicationRepo, app.JobRepo, app.UserRepo)
	catalogService := services.NewCatalogService(app.CompanyRepo, app.SkillRepo)

	// Create handlers
	authHandler := handlers.NewAuthHandler(userService, adminService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, app.UserRepo, app.AdminRepo)
	limiter := middleware.NewRedisLimiter(app.RedisClient)
	authLimiter := middleware.AuthRateLimiter(limiter, app.Config.RateLimit.AuthLimit, app.Config.RateLimit.AuthWindow)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, authMiddleware, authLimiter)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterCatalogRoutes(apiV1, catalogHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
