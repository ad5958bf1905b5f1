package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	principalCtx        = "principalID" // Key to store the principal ID in context
	roleCtx             = "principalRole"
	currentUserCtx      = "currentUser"
	currentAdminCtx     = "currentAdmin"
)

// JWTAuthMiddleware creates a Gin middleware that resolves a bearer token
// to exactly one of {User, Admin} or rejects with 401. The resolved record
// has its credential hash stripped before being attached to the context.
func JWTAuthMiddleware(jwtSecret string, userRepo storage.UserRepository, adminRepo storage.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		token, err := jwt.ParseWithClaims(tokenString, &services.Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(*services.Claims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		principalID, err := uuid.Parse(claims.Subject)
		if err != nil {
			log.Printf("Auth middleware: Error parsing principal ID from token subject %q: %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid principal identifier in token"})
			return
		}

		// Role dispatch: "admin" resolves against the admin table, anything
		// else against the user table. A token outlives nothing: if the
		// account is gone the lookup fails and the request is rejected.
		if claims.Role == models.RoleAdmin {
			admin, err := adminRepo.GetByID(c.Request.Context(), principalID)
			if err != nil {
				log.Printf("Auth middleware: Admin %s from token not found: %v", principalID, err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
				return
			}
			admin.PasswordHash = ""
			c.Set(currentAdminCtx, admin)
			c.Set(roleCtx, models.RoleAdmin)
		} else {
			user, err := userRepo.GetByID(c.Request.Context(), principalID)
			if err != nil {
				log.Printf("Auth middleware: User %s from token not found: %v", principalID, err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized, token failed"})
				return
			}
			user.PasswordHash = ""
			c.Set(currentUserCtx, user)
			c.Set(roleCtx, models.RoleUser)
		}

		c.Set(principalCtx, principalID)
		c.Next()
	}
}

// AdminOnly gates recruiter-only routes. It must run after
// JWTAuthMiddleware and fails with 403 unless the resolved role is admin.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetRoleFromContext(c)
		if err != nil || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized as an admin"})
			return
		}
		c.Next()
	}
}

// UserOnly gates job-seeker-only routes; 403 for any other role.
func UserOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetRoleFromContext(c)
		if err != nil || role != models.RoleUser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not authorized as a user"})
			return
		}
		c.Next()
	}
}

// GetPrincipalIDFromContext returns the authenticated principal's id.
func GetPrincipalIDFromContext(c *gin.Context) (uuid.UUID, error) {
	idAny, exists := c.Get(principalCtx)
	if !exists {
		return uuid.Nil, errors.New("principal ID not found in context")
	}

	id, ok := idAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("principal ID in context is of invalid type")
	}

	return id, nil
}

// GetRoleFromContext returns the authenticated principal's role.
func GetRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return "", errors.New("role not found in context")
	}

	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("role in context is of invalid type")
	}

	return role, nil
}

// GetCurrentUserFromContext returns the resolved user record, hash stripped.
func GetCurrentUserFromContext(c *gin.Context) (*models.User, error) {
	userAny, exists := c.Get(currentUserCtx)
	if !exists {
		return nil, errors.New("user not found in context")
	}

	user, ok := userAny.(*models.User)
	if !ok {
		return nil, errors.New("user in context is of invalid type")
	}

	return user, nil
}

// GetCurrentAdminFromContext returns the resolved admin record, hash stripped.
func GetCurrentAdminFromContext(c *gin.Context) (*models.Admin, error) {
	adminAny, exists := c.Get(currentAdminCtx)
	if !exists {
		return nil, errors.New("admin not found in context")
	}

	admin, ok := adminAny.(*models.Admin)
	if !ok {
		return nil, errors.New("admin in context is of invalid type")
	}

	return admin, nil
}
