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

const applicationColumns = `id, job_id, user_id, resume_url, cover_letter, status,
	snapshot_degree, snapshot_specialization, snapshot_university,
	snapshot_experience_years, snapshot_current_company, applied_at,
	created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL. The (job_id, user_id) unique index is the second line
// of defense against duplicate applies: two concurrent requests resolve to
// exactly one stored row and one ErrConflict.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

// Create stores a new application with status 'applied' and the profile
// snapshot taken from the request body.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	query := fmt.Sprintf(`
		INSERT INTO applications (id, job_id, user_id, resume_url, cover_letter, status,
			snapshot_degree, snapshot_specialization, snapshot_university,
			snapshot_experience_years, snapshot_current_company, applied_at,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW(), NOW())
		RETURNING %s
	`, applicationColumns)

	rows, err := r.db.Query(ctx, query,
		uuid.New(),
		req.JobID,
		req.UserID,
		req.ResumeURL,
		req.CoverLetter,
		models.ApplicationStatusApplied,
		req.Degree,
		req.Specialization,
		req.University,
		req.ExperienceYears,
		req.CurrentCompany,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	application, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Application])
	if err != nil {
		if mapped := mapPgError(err); errors.Is(mapped, storage.ErrConflict) {
			log.Printf("Duplicate application detected for job %s / user %s\n", req.JobID, req.UserID)
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating application for job %s / user %s: %v\n", req.JobID, req.UserID, err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", application.ID)
	return application, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	application, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	return application, nil
}

// GetByJobAndUser retrieves the application for a (job, user) pair, or
// storage.ErrNotFound when the pair has none. At most one can exist.
func (r *ApplicationRepo) GetByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE job_id = $1 AND user_id = $2`, applicationColumns)

	rows, err := r.db.Query(ctx, query, jobID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application for job %s / user %s: %w", jobID, userID, err)
	}

	application, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application for job %s / user %s: %v\n", jobID, userID, err)
		return nil, fmt.Errorf("failed to get application for job %s / user %s: %w", jobID, userID, err)
	}

	return application, nil
}

// ListByUser retrieves the user's own applications with a partial job
// projection, newest first. A LEFT JOIN keeps rows whose job has been
// hard-deleted.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ApplicationWithJob, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			j.id, j.title, j.company_name, j.location_city, j.status
		FROM applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
	`, prefixColumns("a", applicationColumns))

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		log.Printf("Error querying applications for user %s: %v\n", userID, err)
		return nil, fmt.Errorf("failed to query applications by user: %w", err)
	}
	defer rows.Close()

	results := []models.ApplicationWithJob{}
	for rows.Next() {
		var item models.ApplicationWithJob
		var jobID *uuid.UUID
		var jobTitle, jobCompany, jobCity *string
		var jobStatus *models.JobStatus

		err := rows.Scan(
			&item.ID, &item.JobID, &item.UserID, &item.ResumeURL, &item.CoverLetter, &item.Status,
			&item.SnapshotDegree, &item.SnapshotSpecialization, &item.SnapshotUniversity,
			&item.SnapshotExperienceYears, &item.SnapshotCurrentCompany, &item.AppliedAt,
			&item.CreatedAt, &item.UpdatedAt,
			&jobID, &jobTitle, &jobCompany, &jobCity, &jobStatus,
		)
		if err != nil {
			log.Printf("Error scanning application row for user %s: %v\n", userID, err)
			return nil, fmt.Errorf("failed to scan applications by user: %w", err)
		}

		if jobID != nil {
			item.Job = models.JobSummary{
				ID:           *jobID,
				CompanyName:  jobCompany,
				LocationCity: jobCity,
			}
			if jobTitle != nil {
				item.Job.Title = *jobTitle
			}
			if jobStatus != nil {
				item.Job.Status = *jobStatus
			}
		}

		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by user: %w", err)
	}

	return results, nil
}

// ListByJob retrieves every application for a job with the applicant
// projection (credential fields excluded), newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.ApplicationWithUser, error) {
	query := fmt.Sprintf(`
		SELECT %s,
			u.id, u.first_name, u.last_name, u.email, u.phone,
			u.location_city, u.degree, u.specialization, u.experience_years
		FROM applications a
		JOIN users u ON u.id = a.user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC
	`, prefixColumns("a", applicationColumns))

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications for job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	defer rows.Close()

	results := []models.ApplicationWithUser{}
	for rows.Next() {
		var item models.ApplicationWithUser

		err := rows.Scan(
			&item.ID, &item.JobID, &item.UserID, &item.ResumeURL, &item.CoverLetter, &item.Status,
			&item.SnapshotDegree, &item.SnapshotSpecialization, &item.SnapshotUniversity,
			&item.SnapshotExperienceYears, &item.SnapshotCurrentCompany, &item.AppliedAt,
			&item.CreatedAt, &item.UpdatedAt,
			&item.User.ID, &item.User.FirstName, &item.User.LastName, &item.User.Email,
			&item.User.Phone, &item.User.LocationCity, &item.User.Degree,
			&item.User.Specialization, &item.User.ExperienceYears,
		)
		if err != nil {
			log.Printf("Error scanning application row for job %s: %v\n", jobID, err)
			return nil, fmt.Errorf("failed to scan applications by job: %w", err)
		}

		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by job: %w", err)
	}

	return results, nil
}

// UpdateStatus overwrites the application status and persists it. Enum
// membership is validated in the service layer before reaching here.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := fmt.Sprintf(`
		UPDATE applications SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, applicationColumns)

	rows, err := r.db.Query(ctx, query, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update application %s: %w", id, err)
	}

	application, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.Application])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Attempted to update status of non-existent application %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application %s: %w", id, err)
	}

	return application, nil
}
