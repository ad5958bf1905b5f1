package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings. Listing
// and reading jobs is public; writes require an admin token.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)

		jobs.POST("", authMiddleware, middleware.AdminOnly(), jobHandler.CreateJob)
		jobs.GET("/admin/all", authMiddleware, middleware.AdminOnly(), jobHandler.ListAdminJobs)
		jobs.PUT("/:id", authMiddleware, middleware.AdminOnly(), jobHandler.UpdateJob)
		jobs.DELETE("/:id", authMiddleware, middleware.AdminOnly(), jobHandler.DeleteJob)
	}
}
