package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"
)

type applicationService struct {
	appRepo  storage.ApplicationRepository
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, userRepo storage.UserRepository) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
	}
}

// Apply creates a new application for a user to a specific job.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	// 1. The target job must exist and be open.
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}
	if job.Status != models.JobStatusOpen {
		log.Printf("Apply: Attempt to apply to non-open job %s (status: %s)", req.JobID, job.Status)
		return nil, fmt.Errorf("%w: this job is no longer accepting applications", ErrInvalidState)
	}

	// 2. The (job, user) pair must not already have an application.
	_, err = s.appRepo.GetByJobAndUser(ctx, req.JobID, req.UserID)
	if err == nil {
		log.Printf("Apply: User %s already applied to job %s", req.UserID, req.JobID)
		return nil, fmt.Errorf("%w: you have already applied for this job", ErrConflict)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking existing application")
	}

	// 3. Create. The unique (job_id, user_id) index catches the race two
	// concurrent applies can win past the check above; both layers surface
	// the same Conflict.
	application, err := s.appRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: you have already applied for this job", ErrConflict)
		}
		log.Printf("Apply: Error creating application: %v", err)
		return nil, mapRepoError(err, "creating application")
	}

	return application, nil
}

// ListMyApplications returns the caller's own applications, newest first.
func (s *applicationService) ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationWithJob, error) {
	applications, err := s.appRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		log.Printf("ListMyApplications: Error listing applications for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return applications, nil
}

// ListJobApplications returns all applications for a job (admin view).
func (s *applicationService) ListJobApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationWithUser, error) {
	// The job must exist; an unknown id is NotFound, not an empty list.
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for applicant listing", req.JobID))
	}

	applications, err := s.appRepo.ListByJob(ctx, req.JobID)
	if err != nil {
		log.Printf("ListJobApplications: Error listing applications for job %s: %v", req.JobID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return applications, nil
}

// UpdateStatus validates the requested status against the fixed five-value
// enum and overwrites it. Transitions are permissive: any member-to-member
// move is accepted.
func (s *applicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	application, err := s.appRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating status of application %s", req.ID))
	}
	return application, nil
}

// GetApplicationByID returns one application with job and user expanded.
// Visibility: any admin, or the user who owns the application.
func (s *applicationService) GetApplicationByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*dto.ApplicationDetailResponse, error) {
	application, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	if req.RequesterRole != models.RoleAdmin && application.UserID != req.RequesterID {
		log.Printf("GetApplicationByID: Forbidden attempt by %s (%s) on application %s", req.RequesterID, req.RequesterRole, req.ID)
		return nil, fmt.Errorf("%w: not authorized to view this application", ErrForbidden)
	}

	detail := &dto.ApplicationDetailResponse{Application: *application}

	job, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "expanding application job")
	}
	detail.Job = job // nil when the job was hard-deleted

	user, err := s.userRepo.GetByID(ctx, application.UserID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "expanding application user")
	}
	if user != nil {
		user.PasswordHash = ""
	}
	detail.User = user

	return detail, nil
}
