package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login and profile routes for both
// principal kinds. The credential routes sit behind the auth rate limiter;
// everything else requires a valid token.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
	authLimiter gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	{
		user := auth.Group("/user")
		{
			user.POST("/signup", authLimiter, authHandler.SignupUser)
			user.POST("/login", authLimiter, authHandler.LoginUser)

			user.GET("/profile", authMiddleware, middleware.UserOnly(), authHandler.GetProfile)
			user.PUT("/profile", authMiddleware, middleware.UserOnly(), authHandler.UpdateProfile)

			// Admin-side read of any user's profile.
			user.GET("/:id", authMiddleware, middleware.AdminOnly(), authHandler.GetUserByID)
		}

		admin := auth.Group("/admin")
		{
			admin.POST("/signup", authLimiter, authHandler.SignupAdmin)
			admin.POST("/login", authLimiter, authHandler.LoginAdmin)
		}
	}
}
