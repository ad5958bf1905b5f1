package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"golang.org/x/crypto/bcrypt"
)

type adminService struct {
	repo          storage.AdminRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(repo storage.AdminRepository, jwtSecret string, jwtExpiration time.Duration) AdminService {
	return &adminService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *adminService) Signup(ctx context.Context, req *dto.SignupAdminRequest) (*models.Admin, string, error) {
	admin, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, "", fmt.Errorf("%w: admin already exists", ErrConflict)
		}
		log.Printf("AdminService: Error creating admin: %v", err)
		return nil, "", fmt.Errorf("internal error creating admin: %w", err)
	}

	token, err := generateToken(admin.ID, models.RoleAdmin, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("AdminService: Error generating token for admin %s: %v", admin.Email, err)
		return nil, "", fmt.Errorf("failed to generate signup token: %w", err)
	}

	return admin, token, nil
}

func (s *adminService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Admin, string, error) {
	admin, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Admin login attempt failed for email %s: admin not found", req.Email)
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Error fetching admin by email %s during login: %v", req.Email, err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password))
	if err != nil {
		log.Printf("Admin login attempt failed for email %s: invalid password", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := generateToken(admin.ID, models.RoleAdmin, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("Error generating JWT token for admin %s: %v", admin.Email, err)
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}

	return admin, token, nil
}
