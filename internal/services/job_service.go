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

type jobService struct {
	jobRepo     storage.JobRepository
	companyRepo storage.CompanyRepository
	skillRepo   storage.SkillRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, companyRepo storage.CompanyRepository, skillRepo storage.SkillRepository) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		skillRepo:   skillRepo,
	}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	// Normalization happens here so a newline-separated string and an
	// equivalent pre-split array store the same ordered list.
	req.Requirements = normalizeLines(req.Requirements)
	req.Responsibilities = normalizeLines(req.Responsibilities)

	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: job identifier %q already in use", ErrConflict, req.JobID)
		}
		log.Printf("JobService: Error creating job: %v", err)
		return nil, fmt.Errorf("internal error creating job: %w", err)
	}
	return job, nil
}

func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*dto.JobDetailResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", req.ID))
	}

	detail := &dto.JobDetailResponse{Job: *job, Skills: []models.Skill{}}

	if job.CompanyID != nil {
		company, err := s.companyRepo.GetByID(ctx, *job.CompanyID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			log.Printf("JobService: Error expanding company %s for job %s: %v", *job.CompanyID, job.ID, err)
			return nil, fmt.Errorf("internal error expanding company: %w", err)
		}
		detail.Company = company // nil when the reference dangles
	}

	if len(job.SkillsRequired) > 0 {
		skills, err := s.skillRepo.GetByIDs(ctx, job.SkillsRequired)
		if err != nil {
			log.Printf("JobService: Error expanding skills for job %s: %v", job.ID, err)
			return nil, fmt.Errorf("internal error expanding skills: %w", err)
		}
		detail.Skills = skills
	}

	return detail, nil
}

func (s *jobService) ListOpenJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListOpen(ctx, req)
	if err != nil {
		log.Printf("JobService: Error listing open jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) ListAdminJobs(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.JobWithCount, error) {
	jobs, err := s.jobRepo.ListByAdmin(ctx, req.AdminID)
	if err != nil {
		log.Printf("JobService: Error listing jobs for admin %s: %v", req.AdminID, err)
		return nil, fmt.Errorf("internal error listing admin jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	// Re-apply the same text-to-list normalization on update.
	if req.Requirements != nil {
		normalized := dto.StringList(normalizeLines(*req.Requirements))
		req.Requirements = &normalized
	}
	if req.Responsibilities != nil {
		normalized := dto.StringList(normalizeLines(*req.Responsibilities))
		req.Responsibilities = &normalized
	}

	// No ownership check: any authenticated admin may update any job.
	job, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", req.ID))
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	if err := s.jobRepo.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %s", req.ID))
	}
	return nil
}
