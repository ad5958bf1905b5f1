package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const adminColumns = `id, name, email, password_hash, created_at, updated_at`

// AdminRepo implements the storage.AdminRepository interface using
// PostgreSQL. Admin emails form their own namespace; the same email string
// may register as both a user and an admin.
type AdminRepo struct {
	db Querier
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(db *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{db: db}
}

// Compile-time check to ensure AdminRepo implements AdminRepository
var _ storage.AdminRepository = (*AdminRepo)(nil)

// Create registers a new admin with a hashed credential.
func (r *AdminRepo) Create(ctx context.Context, req *dto.SignupAdminRequest) (*models.Admin, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for admin email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO admins (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s
	`, adminColumns)

	rows, err := r.db.Query(ctx, query, uuid.New(), req.Name, req.Email, string(hashedPassword))
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	admin, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Admin])
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, storage.ErrDuplicateEmail) {
			log.Printf("Attempted to create admin with duplicate email %s\n", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating admin with email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	log.Printf("Admin created successfully with ID: %s", admin.ID)
	return admin, nil
}

// GetByID retrieves a single admin by ID.
func (r *AdminRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE id = $1`, adminColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by ID %s: %w", id, err)
	}

	admin, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Admin])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Admin not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning admin by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get admin by ID %s: %w", id, err)
	}

	return admin, nil
}

// GetByEmail retrieves a single admin by email, including the password hash.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := fmt.Sprintf(`SELECT %s FROM admins WHERE email = $1`, adminColumns)

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	admin, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Admin])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning admin by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}
