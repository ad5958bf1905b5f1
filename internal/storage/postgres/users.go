package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = `id, first_name, last_name, email, phone, password_hash,
	location_city, location_state, country, degree, specialization, university,
	graduation_year, experience_years, current_company, current_salary,
	expected_salary, resume_url, linkedin_url, skills, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

// Create registers a new user. The raw password is hashed here and never
// stored or returned.
func (r *UserRepo) Create(ctx context.Context, req *dto.SignupUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO users (id, first_name, last_name, email, phone, password_hash, location_city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s
	`, userColumns)

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		string(hashedPassword),
		req.LocationCity,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.User])
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, storage.ErrDuplicateEmail) {
			log.Printf("Attempted to create user with duplicate email %s\n", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", user.ID)
	return user, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	return user, nil
}

// GetByEmail retrieves a single user by email, including the password hash
// (needed for credential checks during login).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// UpdateProfile overwrites the allow-listed mutable fields that were
// provided. The password is re-hashed only when present.
func (r *UserRepo) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", column, placeholder(args)))
	}

	if req.FirstName != nil {
		addSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		addSet("last_name", *req.LastName)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.LocationCity != nil {
		addSet("location_city", *req.LocationCity)
	}
	if req.LocationState != nil {
		addSet("location_state", *req.LocationState)
	}
	if req.Country != nil {
		addSet("country", *req.Country)
	}
	if req.Degree != nil {
		addSet("degree", *req.Degree)
	}
	if req.Specialization != nil {
		addSet("specialization", *req.Specialization)
	}
	if req.University != nil {
		addSet("university", *req.University)
	}
	if req.GraduationYear != nil {
		addSet("graduation_year", *req.GraduationYear)
	}
	if req.ExperienceYears != nil {
		addSet("experience_years", *req.ExperienceYears)
	}
	if req.CurrentCompany != nil {
		addSet("current_company", *req.CurrentCompany)
	}
	if req.CurrentSalary != nil {
		addSet("current_salary", *req.CurrentSalary)
	}
	if req.ExpectedSalary != nil {
		addSet("expected_salary", *req.ExpectedSalary)
	}
	if req.ResumeURL != nil {
		addSet("resume_url", *req.ResumeURL)
	}
	if req.LinkedinURL != nil {
		addSet("linkedin_url", *req.LinkedinURL)
	}
	if req.Skills != nil {
		addSet("skills", req.Skills)
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing new password for user %s: %v\n", req.ID, err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		addSet("password_hash", string(hashedPassword))
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = %s RETURNING %s`,
		strings.Join(setClauses, ", "), placeholder(args), userColumns)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", req.ID, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Attempted to update non-existent user %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating user %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update user %s: %w", req.ID, err)
	}

	return user, nil
}
