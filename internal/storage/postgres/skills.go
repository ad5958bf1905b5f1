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

const skillColumns = `id, skill_name, created_at, updated_at`

// SkillRepo implements the storage.SkillRepository interface using
// PostgreSQL. Skill names are canonical and unique.
type SkillRepo struct {
	db Querier
}

// NewSkillRepo creates a new SkillRepo.
func NewSkillRepo(db *pgxpool.Pool) *SkillRepo {
	return &SkillRepo{db: db}
}

// Compile-time check to ensure SkillRepo implements SkillRepository
var _ storage.SkillRepository = (*SkillRepo)(nil)

// Create saves a new skill tag. A duplicate name surfaces as ErrConflict.
func (r *SkillRepo) Create(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error) {
	query := fmt.Sprintf(`
		INSERT INTO skills (id, skill_name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s
	`, skillColumns)

	rows, err := r.db.Query(ctx, query, uuid.New(), req.SkillName)
	if err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	skill, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Skill])
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, storage.ErrConflict) {
			log.Printf("Attempted to create duplicate skill %q\n", req.SkillName)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating skill %q: %v\n", req.SkillName, err)
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

// GetByIDs retrieves the skills matching the given ids. Unknown ids are
// silently skipped.
func (r *SkillRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Skill, error) {
	if len(ids) == 0 {
		return []models.Skill{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM skills WHERE id = ANY($1)`, skillColumns)

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		log.Printf("Error querying skills by ids: %v\n", err)
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Skill])
	if err != nil {
		return nil, fmt.Errorf("failed to scan skills: %w", err)
	}

	if skills == nil {
		skills = []models.Skill{}
	}

	return skills, nil
}

// List retrieves all skills ordered by name.
func (r *SkillRepo) List(ctx context.Context) ([]models.Skill, error) {
	query := fmt.Sprintf(`SELECT %s FROM skills ORDER BY skill_name ASC`, skillColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying skills: %v\n", err)
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	skills, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Skill])
	if err != nil {
		return nil, fmt.Errorf("failed to scan skills: %w", err)
	}

	if skills == nil {
		skills = []models.Skill{}
	}

	return skills, nil
}
