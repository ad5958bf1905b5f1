package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, req *dto.SignupUserRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

// Ensure MockUserService implements the interface (compile-time check)
var _ services.UserService = (*MockUserService)(nil)

// MockAdminService is a mock type for the services.AdminService interface
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Signup(ctx context.Context, req *dto.SignupAdminRequest) (*models.Admin, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.String(1), args.Error(2)
}

func (m *MockAdminService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Admin, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Admin), args.String(1), args.Error(2)
}

var _ services.AdminService = (*MockAdminService)(nil)

func setupAuthHandlerTest() (*MockUserService, *MockAdminService, *gin.Engine) {
	userSvc := new(MockUserService)
	adminSvc := new(MockAdminService)
	handler := handlers.NewAuthHandler(userSvc, adminSvc, validator.New())

	router := gin.New()
	router.POST("/auth/user/signup", handler.SignupUser)
	router.POST("/auth/user/login", handler.LoginUser)
	router.POST("/auth/admin/login", handler.LoginAdmin)
	return userSvc, adminSvc, router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_SignupUser(t *testing.T) {
	t.Run("Success returns 201 with token", func(t *testing.T) {
		userSvc, _, router := setupAuthHandlerTest()
		userID := uuid.New()

		userSvc.On("Signup", mock.Anything, mock.AnythingOfType("*dto.SignupUserRequest")).
			Return(&models.User{ID: userID, FirstName: "Asha", LastName: "Verma", Email: "asha@example.com"}, "signed-token", nil).Once()

		rec := postJSON(router, "/auth/user/signup", gin.H{
			"first_name": "Asha",
			"last_name":  "Verma",
			"email":      "asha@example.com",
			"phone":      "5550101",
			"password":   "password123",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, userID, resp.ID)
		assert.Equal(t, "Asha Verma", resp.Name)
		assert.Equal(t, "signed-token", resp.Token)

		userSvc.AssertExpectations(t)
	})

	t.Run("Validation failure is 400 and never reaches the service", func(t *testing.T) {
		userSvc, _, router := setupAuthHandlerTest()

		rec := postJSON(router, "/auth/user/signup", gin.H{
			"first_name": "Asha",
			"email":      "not-an-email",
			"password":   "pw",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		userSvc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email is 400", func(t *testing.T) {
		userSvc, _, router := setupAuthHandlerTest()

		userSvc.On("Signup", mock.Anything, mock.Anything).
			Return(nil, "", services.ErrConflict).Once()

		rec := postJSON(router, "/auth/user/signup", gin.H{
			"first_name": "Asha",
			"last_name":  "Verma",
			"email":      "asha@example.com",
			"phone":      "5550101",
			"password":   "password123",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login_UniformBody(t *testing.T) {
	userSvc, adminSvc, router := setupAuthHandlerTest()

	userSvc.On("Login", mock.Anything, mock.Anything).
		Return(nil, "", services.ErrInvalidCredentials).Twice()
	adminSvc.On("Login", mock.Anything, mock.Anything).
		Return(nil, "", services.ErrInvalidCredentials).Once()

	recUnknown := postJSON(router, "/auth/user/login", gin.H{"email": "ghost@example.com", "password": "x1234567"})
	recWrongPw := postJSON(router, "/auth/user/login", gin.H{"email": "real@example.com", "password": "wrong123"})
	recAdmin := postJSON(router, "/auth/admin/login", gin.H{"email": "rec@example.com", "password": "wrong123"})

	// Unknown email, wrong password, and the admin surface all produce the
	// identical 401 body.
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, recAdmin.Code)
	assert.Equal(t, recUnknown.Body.String(), recWrongPw.Body.String())
	assert.Equal(t, recUnknown.Body.String(), recAdmin.Body.String())
}
