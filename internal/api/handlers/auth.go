package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// AuthHandler holds dependencies for signup, login and profile operations
// for both principal kinds.
type AuthHandler struct {
	userService  services.UserService
	adminService services.AdminService
	validator    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserService, adminService services.AdminService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		adminService: adminService,
		validator:    validate,
	}
}

// Compile-time check to ensure AuthHandler implements AuthHandlerInterface
var _ AuthHandlerInterface = (*AuthHandler)(nil)

// SignupUser godoc
//	@Summary		Register a new job seeker
//	@Description	Creates a user account and returns a signed token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.SignupUserRequest	true	"User registration details"
//	@Success		201		{object}	dto.AuthResponse		"User created successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input or duplicate email"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/auth/user/signup [post]
func (h *AuthHandler) SignupUser(c *gin.Context) {
	var req dto.SignupUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, token, err := h.userService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		log.Printf("SignupUser: Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		ID:    user.ID,
		Name:  user.FirstName + " " + user.LastName,
		Email: user.Email,
		Token: token,
	})
}

// LoginUser godoc
//	@Summary		Authenticate a job seeker
//	@Description	Verifies credentials and issues a 30-day token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Login credentials"
//	@Success		200			{object}	dto.AuthResponse	"Authenticated"
//	@Failure		400			{object}	map[string]string	"Bad Request"
//	@Failure		401			{object}	map[string]string	"Invalid email or password"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/user/login [post]
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Identical response for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("LoginUser: Error during login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		ID:    user.ID,
		Name:  user.FirstName + " " + user.LastName,
		Email: user.Email,
		Token: token,
	})
}

// SignupAdmin godoc
//	@Summary		Register a new recruiter
//	@Description	Creates an admin account and returns a signed token. Admin emails are an independent namespace from user emails.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			admin	body		dto.SignupAdminRequest	true	"Admin registration details"
//	@Success		201		{object}	dto.AuthResponse		"Admin created successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input or duplicate email"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/auth/admin/signup [post]
func (h *AuthHandler) SignupAdmin(c *gin.Context) {
	var req dto.SignupAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	admin, token, err := h.adminService.Signup(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Admin already exists"})
			return
		}
		log.Printf("SignupAdmin: Error creating admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Token: token,
	})
}

// LoginAdmin godoc
//	@Summary		Authenticate a recruiter
//	@Description	Verifies credentials and issues a 30-day token with the admin role.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Login credentials"
//	@Success		200			{object}	dto.AuthResponse	"Authenticated"
//	@Failure		400			{object}	map[string]string	"Bad Request"
//	@Failure		401			{object}	map[string]string	"Invalid email or password"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	admin, token, err := h.adminService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("LoginAdmin: Error during login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Token: token,
	})
}

// GetProfile godoc
//	@Summary		Get own profile
//	@Description	Returns the authenticated user's profile, credential fields excluded.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	models.User			"Profile"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"User Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/user/profile [get]
//	@Security		BearerAuth
func (h *AuthHandler) GetProfile(c *gin.Context) {
	principalID, err := middleware.GetPrincipalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), principalID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("GetProfile: Error fetching profile for %s: %v", principalID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
//	@Summary		Update own profile
//	@Description	Overwrites the allow-listed mutable fields; unknown fields in the body are ignored. Returns a refreshed token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		dto.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	dto.ProfileUpdateResponse	"Updated profile with refreshed token"
//	@Failure		400		{object}	map[string]string			"Bad Request"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		404		{object}	map[string]string			"User Not Found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/auth/user/profile [put]
//	@Security		BearerAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	principalID, err := middleware.GetPrincipalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = principalID

	user, token, err := h.userService.UpdateProfile(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("UpdateProfile: Error updating profile for %s: %v", principalID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ProfileUpdateResponse{User: *user, Token: token})
}

// GetUserByID godoc
//	@Summary		Get a user's profile by id
//	@Description	Admin-only read of any user's profile, credential fields excluded.
//	@Tags			auth
//	@Produce		json
//	@Param			id	path		string				true	"User ID"	Format(uuid)
//	@Success		200	{object}	models.User			"Profile"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden"
//	@Failure		404	{object}	map[string]string	"User Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/user/{id} [get]
//	@Security		BearerAuth
func (h *AuthHandler) GetUserByID(c *gin.Context) {
	idStr := c.Param("id")
	userID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	req := dto.GetUserByIDRequest{ID: userID}
	user, err := h.userService.GetByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("GetUserByID: Error fetching user %s: %v", idStr, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
