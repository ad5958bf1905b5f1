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
)

const companyColumns = `id, name, logo, website, description, industry, size,
	headquarters, created_at, updated_at`

// CompanyRepo implements the storage.CompanyRepository interface using
// PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Compile-time check to ensure CompanyRepo implements CompanyRepository
var _ storage.CompanyRepository = (*CompanyRepo)(nil)

// Create saves a new company record.
func (r *CompanyRepo) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	query := fmt.Sprintf(`
		INSERT INTO companies (id, name, logo, website, description, industry, size, headquarters, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s
	`, companyColumns)

	rows, err := r.db.Query(ctx, query,
		uuid.New(), req.Name, req.Logo, req.Website, req.Description,
		req.Industry, req.Size, req.Headquarters)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	company, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Company])
	if err != nil {
		log.Printf("Error creating company %s: %v\n", req.Name, err)
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}

// GetByID retrieves a single company by ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE id = $1`, companyColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}

	company, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning company by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}

	return company, nil
}

// List retrieves all companies, newest first.
func (r *CompanyRepo) List(ctx context.Context) ([]models.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies ORDER BY created_at DESC`, companyColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying companies: %v\n", err)
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		return nil, fmt.Errorf("failed to scan companies: %w", err)
	}

	if companies == nil {
		companies = []models.Company{}
	}

	return companies, nil
}
