package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard-api/internal/api/middleware"
	mock_storage "jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, principalID uuid.UUID, role models.Role, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &services.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func setupAuthTest(t *testing.T) (*mock_storage.MockUserRepository, *mock_storage.MockAdminRepository, *gin.Engine) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mock_storage.NewMockUserRepository(ctrl)
	adminRepo := mock_storage.NewMockAdminRepository(ctrl)

	router := gin.New()
	authed := router.Group("/", middleware.JWTAuthMiddleware(testSecret, userRepo, adminRepo))
	authed.GET("/whoami", func(c *gin.Context) {
		role, err := middleware.GetRoleFromContext(c)
		require.NoError(t, err)
		id, err := middleware.GetPrincipalIDFromContext(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, gin.H{"role": role, "id": id})
	})
	authed.GET("/admin-only", middleware.AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	authed.GET("/user-only", middleware.UserOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return userRepo, adminRepo, router
}

func perform(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware_HeaderHandling(t *testing.T) {
	_, _, router := setupAuthTest(t)

	t.Run("Missing header", func(t *testing.T) {
		rec := perform(router, "/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		rec := perform(router, "/whoami", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage token", func(t *testing.T) {
		rec := perform(router, "/whoami", "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	_, _, router := setupAuthTest(t)
	token := signToken(t, uuid.New(), models.RoleUser, -time.Minute)

	rec := perform(router, "/whoami", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestJWTAuthMiddleware_RoleDispatch(t *testing.T) {
	userID := uuid.New()
	adminID := uuid.New()

	t.Run("User token resolves against user table", func(t *testing.T) {
		userRepo, _, router := setupAuthTest(t)
		userRepo.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.User{ID: userID, PasswordHash: "hash"}, nil).Times(1)

		rec := perform(router, "/whoami", "Bearer "+signToken(t, userID, models.RoleUser, time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"user"`)
	})

	t.Run("Admin token resolves against admin table", func(t *testing.T) {
		_, adminRepo, router := setupAuthTest(t)
		adminRepo.EXPECT().GetByID(gomock.Any(), adminID).
			Return(&models.Admin{ID: adminID, PasswordHash: "hash"}, nil).Times(1)

		rec := perform(router, "/whoami", "Bearer "+signToken(t, adminID, models.RoleAdmin, time.Hour))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"admin"`)
	})

	t.Run("Token for deleted account is rejected", func(t *testing.T) {
		userRepo, _, router := setupAuthTest(t)
		userRepo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, storage.ErrNotFound).Times(1)

		rec := perform(router, "/whoami", "Bearer "+signToken(t, userID, models.RoleUser, time.Hour))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRoleGuards(t *testing.T) {
	userID := uuid.New()
	adminID := uuid.New()

	t.Run("User hits admin-only route", func(t *testing.T) {
		userRepo, _, router := setupAuthTest(t)
		userRepo.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil).Times(1)

		rec := perform(router, "/admin-only", "Bearer "+signToken(t, userID, models.RoleUser, time.Hour))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin hits user-only route", func(t *testing.T) {
		_, adminRepo, router := setupAuthTest(t)
		adminRepo.EXPECT().GetByID(gomock.Any(), adminID).Return(&models.Admin{ID: adminID}, nil).Times(1)

		rec := perform(router, "/user-only", "Bearer "+signToken(t, adminID, models.RoleAdmin, time.Hour))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Matching roles pass", func(t *testing.T) {
		userRepo, adminRepo, router := setupAuthTest(t)
		userRepo.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil).Times(1)
		adminRepo.EXPECT().GetByID(gomock.Any(), adminID).Return(&models.Admin{ID: adminID}, nil).Times(1)

		assert.Equal(t, http.StatusOK, perform(router, "/user-only", "Bearer "+signToken(t, userID, models.RoleUser, time.Hour)).Code)
		assert.Equal(t, http.StatusOK, perform(router, "/admin-only", "Bearer "+signToken(t, adminID, models.RoleAdmin, time.Hour)).Code)
	})
}
