package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for job-seeker business logic.
type UserService interface {
	Signup(ctx context.Context, req *dto.SignupUserRequest) (*models.User, string, error) // Returns user and token
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error)
	// UpdateProfile returns a refreshed token alongside the updated user;
	// clients replace their stored token after every profile edit.
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, string, error)
}

// AdminService defines the interface for recruiter business logic.
type AdminService interface {
	Signup(ctx context.Context, req *dto.SignupAdminRequest) (*models.Admin, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Admin, string, error)
}

// JobService defines the interface for job catalog business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*dto.JobDetailResponse, error)
	ListOpenJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	ListAdminJobs(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.JobWithCount, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// ApplicationService defines the interface for application ledger logic.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error)
	ListMyApplications(ctx context.Context, req *dto.ListMyApplicationsRequest) ([]models.ApplicationWithJob, error)
	ListJobApplications(ctx context.Context, req *dto.ListJobApplicationsRequest) ([]models.ApplicationWithUser, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	GetApplicationByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*dto.ApplicationDetailResponse, error)
}

// CatalogService defines the interface for the company/skill reference data.
type CatalogService interface {
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	CreateSkill(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
}
