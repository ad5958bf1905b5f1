package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers company and skill reference-data routes.
// Reads are public; writes require an admin token.
func RegisterCatalogRoutes(
	rg *gin.RouterGroup,
	catalogHandler handlers.CatalogHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	companies := rg.Group("/companies")
	{
		companies.GET("", catalogHandler.ListCompanies)
		companies.POST("", authMiddleware, middleware.AdminOnly(), catalogHandler.CreateCompany)
	}

	skills := rg.Group("/skills")
	{
		skills.GET("", catalogHandler.ListSkills)
		skills.POST("", authMiddleware, middleware.AdminOnly(), catalogHandler.CreateSkill)
	}
}
