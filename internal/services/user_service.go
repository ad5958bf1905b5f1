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

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	repo          storage.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, jwtSecret string, jwtExpiration time.Duration) UserService {
	return &userService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *userService) Signup(ctx context.Context, req *dto.SignupUserRequest) (*models.User, string, error) {
	user, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, "", fmt.Errorf("%w: user already exists", ErrConflict)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, "", fmt.Errorf("internal error creating user: %w", err)
	}

	token, err := generateToken(user.ID, models.RoleUser, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("UserService: Error generating token for user %s: %v", user.Email, err)
		return nil, "", fmt.Errorf("failed to generate signup token: %w", err)
	}

	return user, token, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Same error as a password mismatch; never reveal which one failed.
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", fmt.Errorf("internal error during login: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := generateToken(user.ID, models.RoleUser, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", user.Email, err)
		return nil, "", fmt.Errorf("failed to generate login token: %w", err)
	}

	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "fetching profile")
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching user %s", req.ID))
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, string, error) {
	user, err := s.repo.UpdateProfile(ctx, req)
	if err != nil {
		return nil, "", mapRepoError(err, "updating profile")
	}
	user.PasswordHash = ""

	// Issue a fresh token on every successful profile update.
	token, err := generateToken(user.ID, models.RoleUser, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		log.Printf("Error generating refreshed token for user %s: %v", user.Email, err)
		return nil, "", fmt.Errorf("failed to generate refreshed token: %w", err)
	}

	return user, token, nil
}
