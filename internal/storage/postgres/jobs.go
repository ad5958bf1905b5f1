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
)

const jobColumns = `id, job_id, title, company_id, company_name, company_logo,
	posted_by_admin_id, description, requirements, responsibilities, salary_min,
	salary_max, experience_required, job_type, work_mode, location_city,
	location_state, country, openings_count, application_deadline, status,
	skills_required, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job posting. A duplicate public job_id surfaces as
// storage.ErrConflict.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	status := models.JobStatusDraft
	if req.Status != nil {
		status = *req.Status
	}
	openings := req.OpeningsCount
	if openings <= 0 {
		openings = 1
	}

	query := fmt.Sprintf(`
		INSERT INTO jobs (id, job_id, title, company_id, company_name, company_logo,
			posted_by_admin_id, description, requirements, responsibilities, salary_min,
			salary_max, experience_required, job_type, work_mode, location_city,
			location_state, country, openings_count, application_deadline, status,
			skills_required, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.JobID,
		req.Title,
		req.CompanyID,
		req.CompanyName,
		req.CompanyLogo,
		req.PostedByAdminID,
		req.Description,
		[]string(req.Requirements),
		[]string(req.Responsibilities),
		req.SalaryMin,
		req.SalaryMax,
		req.ExperienceRequired,
		req.JobType,
		req.WorkMode,
		req.LocationCity,
		req.LocationState,
		req.Country,
		openings,
		req.ApplicationDeadline,
		status,
		req.SkillsRequired,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	job, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Job])
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, storage.ErrConflict) {
			log.Printf("Attempted to create job with duplicate job_id %s\n", req.JobID)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating job %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s (job_id=%s)", job.ID, job.JobID)
	return job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	job, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	return job, nil
}

// listOpenFilters builds the WHERE conditions for the public listing.
// Keyword and location are substring matches; job_type, work_mode and role
// match exactly (role case-insensitively, against the title).
func listOpenFilters(req *dto.ListJobsRequest) ([]string, []interface{}) {
	conditions := []string{"status = $1"}
	args := []interface{}{models.JobStatusOpen}

	if req.Keyword != "" {
		args = append(args, "%"+req.Keyword+"%")
		conditions = append(conditions, fmt.Sprintf("title ILIKE %s", placeholder(args)))
	}
	if req.Location != "" {
		args = append(args, "%"+req.Location+"%")
		p := placeholder(args)
		conditions = append(conditions, fmt.Sprintf("(location_city ILIKE %s OR location_state ILIKE %s)", p, p))
	}
	if req.JobType != "" {
		args = append(args, req.JobType)
		conditions = append(conditions, fmt.Sprintf("job_type = %s", placeholder(args)))
	}
	if req.WorkMode != "" {
		args = append(args, req.WorkMode)
		conditions = append(conditions, fmt.Sprintf("work_mode = %s", placeholder(args)))
	}
	if req.Role != "" {
		args = append(args, req.Role)
		conditions = append(conditions, fmt.Sprintf("lower(title) = lower(%s)", placeholder(args)))
	}

	return conditions, args
}

// ListOpen retrieves open postings with the optional public filters
// AND-combined, newest first.
func (r *JobRepo) ListOpen(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	baseQuery := fmt.Sprintf(`SELECT %s FROM jobs`, jobColumns)
	conditions, args := listOpenFilters(req)

	query := buildListQuery(baseQuery, conditions)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error querying open jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query open jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning open jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan open jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, nil
}

// ListByAdmin retrieves every job posted by the given admin (all statuses),
// each annotated with the live application count. The count is a grouped
// join computed at read time so it can never go stale.
func (r *JobRepo) ListByAdmin(ctx context.Context, adminID uuid.UUID) ([]models.JobWithCount, error) {
	query := `
		SELECT j.id, j.job_id, j.title, j.company_id, j.company_name, j.company_logo,
			j.posted_by_admin_id, j.description, j.requirements, j.responsibilities,
			j.salary_min, j.salary_max, j.experience_required, j.job_type, j.work_mode,
			j.location_city, j.location_state, j.country, j.openings_count,
			j.application_deadline, j.status, j.skills_required, j.created_at, j.updated_at,
			COUNT(a.id) AS application_count
		FROM jobs j
		LEFT JOIN applications a ON a.job_id = j.id
		WHERE j.posted_by_admin_id = $1
		GROUP BY j.id
		ORDER BY j.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, adminID)
	if err != nil {
		log.Printf("Error querying jobs by admin %s: %v\n", adminID, err)
		return nil, fmt.Errorf("failed to query jobs by admin: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JobWithCount])
	if err != nil {
		log.Printf("Error scanning jobs by admin %s: %v\n", adminID, err)
		return nil, fmt.Errorf("failed to scan jobs by admin: %w", err)
	}

	if jobs == nil {
		jobs = []models.JobWithCount{}
	}

	return jobs, nil
}

// Update applies full-document patch semantics: every provided field
// overwrites the stored one.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = %s", column, placeholder(args)))
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.CompanyID != nil {
		addSet("company_id", *req.CompanyID)
	}
	if req.CompanyName != nil {
		addSet("company_name", *req.CompanyName)
	}
	if req.CompanyLogo != nil {
		addSet("company_logo", *req.CompanyLogo)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Requirements != nil {
		addSet("requirements", []string(*req.Requirements))
	}
	if req.Responsibilities != nil {
		addSet("responsibilities", []string(*req.Responsibilities))
	}
	if req.SalaryMin != nil {
		addSet("salary_min", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		addSet("salary_max", *req.SalaryMax)
	}
	if req.ExperienceRequired != nil {
		addSet("experience_required", *req.ExperienceRequired)
	}
	if req.JobType != nil {
		addSet("job_type", *req.JobType)
	}
	if req.WorkMode != nil {
		addSet("work_mode", *req.WorkMode)
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
	if req.OpeningsCount != nil {
		addSet("openings_count", *req.OpeningsCount)
	}
	if req.ApplicationDeadline != nil {
		addSet("application_deadline", *req.ApplicationDeadline)
	}
	if req.Status != nil {
		addSet("status", *req.Status)
	}
	if req.SkillsRequired != nil {
		addSet("skills_required", req.SkillsRequired)
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = %s RETURNING %s`,
		strings.Join(setClauses, ", "), placeholder(args), jobColumns)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}

	job, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Job])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Attempted to update non-existent job %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		if mapped := mapPgError(err); errors.Is(mapped, storage.ErrConflict) {
			return nil, storage.ErrConflict
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}

	return job, nil
}

// Delete hard-deletes a job. Application rows referencing it are left in
// place and keep their snapshot data.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("Attempted to delete non-existent job %s\n", id)
		return storage.ErrNotFound
	}
	return nil
}
