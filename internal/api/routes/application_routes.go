package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications.
// Every route requires a token; per-route role guards split the surface
// between job seekers and recruiters.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.POST("", middleware.UserOnly(), applicationHandler.Apply)
		applications.GET("/my/all", middleware.UserOnly(), applicationHandler.ListMyApplications)

		applications.GET("/job/:jobId", middleware.AdminOnly(), applicationHandler.ListJobApplications)
		applications.PUT("/:id/status", middleware.AdminOnly(), applicationHandler.UpdateStatus)

		// Owner or any admin; the service enforces visibility.
		applications.GET("/:id", applicationHandler.GetApplicationByID)
	}
}
