package services_test

import (
	"context"
	"errors"
	"testing"

	mock_storage "jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobServiceMocks struct {
	jobRepo     *mock_storage.MockJobRepository
	companyRepo *mock_storage.MockCompanyRepository
	skillRepo   *mock_storage.MockSkillRepository
}

func setupJobServiceTest(t *testing.T) (services.JobService, jobServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := jobServiceMocks{
		jobRepo:     mock_storage.NewMockJobRepository(ctrl),
		companyRepo: mock_storage.NewMockCompanyRepository(ctrl),
		skillRepo:   mock_storage.NewMockSkillRepository(ctrl),
	}
	svc := services.NewJobService(mocks.jobRepo, mocks.companyRepo, mocks.skillRepo)
	return svc, mocks
}

func TestJobService_CreateJob_NormalizesRequirements(t *testing.T) {
	svc, mocks := setupJobServiceTest(t)
	adminID := uuid.New()

	req := &dto.CreateJobRequest{
		JobID:           "JOB1001",
		Title:           "Backend Engineer",
		Description:     "Build services.",
		JobType:         models.JobTypeFullTime,
		WorkMode:        models.WorkModeRemote,
		PostedByAdminID: adminID,
		// Free-text blob with blank and padded lines.
		Requirements:     dto.StringList{"Go\n  PostgreSQL  \n\nRedis"},
		Responsibilities: dto.StringList{"Own services", "  Review code  "},
	}

	mocks.jobRepo.EXPECT().Create(gomock.Any(), req).DoAndReturn(
		func(_ context.Context, got *dto.CreateJobRequest) (*models.Job, error) {
			// The repo must receive the already-normalized lists.
			assert.Equal(t, dto.StringList{"Go", "PostgreSQL", "Redis"}, got.Requirements)
			assert.Equal(t, dto.StringList{"Own services", "Review code"}, got.Responsibilities)
			return &models.Job{
				ID:               uuid.New(),
				JobID:            got.JobID,
				Title:            got.Title,
				Requirements:     got.Requirements,
				Responsibilities: got.Responsibilities,
				Status:           models.JobStatusDraft,
			}, nil
		}).Times(1)

	job, err := svc.CreateJob(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Redis"}, job.Requirements)
}

func TestJobService_CreateJob_DuplicateJobID(t *testing.T) {
	svc, mocks := setupJobServiceTest(t)

	req := &dto.CreateJobRequest{
		JobID:       "JOB1001",
		Title:       "Backend Engineer",
		Description: "Build services.",
		JobType:     models.JobTypeFullTime,
		WorkMode:    models.WorkModeRemote,
	}
	mocks.jobRepo.EXPECT().Create(gomock.Any(), req).Return(nil, storage.ErrConflict).Times(1)

	job, err := svc.CreateJob(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
	assert.Contains(t, err.Error(), "JOB1001")
	assert.Nil(t, job)
}

func TestJobService_GetJobByID(t *testing.T) {
	jobID := uuid.New()
	companyID := uuid.New()
	skillID := uuid.New()

	t.Run("Expands company and skills", func(t *testing.T) {
		svc, mocks := setupJobServiceTest(t)

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{
			ID:             jobID,
			JobID:          "JOB1002",
			CompanyID:      &companyID,
			SkillsRequired: []uuid.UUID{skillID},
		}, nil).Times(1)
		mocks.companyRepo.EXPECT().GetByID(gomock.Any(), companyID).Return(&models.Company{ID: companyID, Name: "Acme"}, nil).Times(1)
		mocks.skillRepo.EXPECT().GetByIDs(gomock.Any(), []uuid.UUID{skillID}).Return([]models.Skill{{ID: skillID, SkillName: "Go"}}, nil).Times(1)

		detail, err := svc.GetJobByID(context.Background(), &dto.GetJobByIDRequest{ID: jobID})
		require.NoError(t, err)
		require.NotNil(t, detail.Company)
		assert.Equal(t, "Acme", detail.Company.Name)
		require.Len(t, detail.Skills, 1)
		assert.Equal(t, "Go", detail.Skills[0].SkillName)
	})

	t.Run("Dangling company reference yields nil company", func(t *testing.T) {
		svc, mocks := setupJobServiceTest(t)

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{
			ID:        jobID,
			JobID:     "JOB1002",
			CompanyID: &companyID,
		}, nil).Times(1)
		mocks.companyRepo.EXPECT().GetByID(gomock.Any(), companyID).Return(nil, storage.ErrNotFound).Times(1)

		detail, err := svc.GetJobByID(context.Background(), &dto.GetJobByIDRequest{ID: jobID})
		require.NoError(t, err)
		assert.Nil(t, detail.Company)
		assert.Empty(t, detail.Skills)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mocks := setupJobServiceTest(t)

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)

		detail, err := svc.GetJobByID(context.Background(), &dto.GetJobByIDRequest{ID: jobID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, detail)
	})
}

func TestJobService_UpdateJob_RenormalizesLists(t *testing.T) {
	svc, mocks := setupJobServiceTest(t)
	jobID := uuid.New()

	reqs := dto.StringList{"Kubernetes\n\n  Terraform "}
	req := &dto.UpdateJobRequest{
		ID:           jobID,
		Requirements: &reqs,
	}

	mocks.jobRepo.EXPECT().Update(gomock.Any(), req).DoAndReturn(
		func(_ context.Context, got *dto.UpdateJobRequest) (*models.Job, error) {
			require.NotNil(t, got.Requirements)
			assert.Equal(t, dto.StringList{"Kubernetes", "Terraform"}, *got.Requirements)
			return &models.Job{ID: jobID, Requirements: *got.Requirements}, nil
		}).Times(1)

	job, err := svc.UpdateJob(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kubernetes", "Terraform"}, job.Requirements)
}

func TestJobService_ListAdminJobs(t *testing.T) {
	svc, mocks := setupJobServiceTest(t)
	adminID := uuid.New()

	mocks.jobRepo.EXPECT().ListByAdmin(gomock.Any(), adminID).Return([]models.JobWithCount{
		{Job: models.Job{JobID: "JOB1003", Status: models.JobStatusDraft}, ApplicationCount: 0},
		{Job: models.Job{JobID: "JOB1002", Status: models.JobStatusOpen}, ApplicationCount: 7},
	}, nil).Times(1)

	jobs, err := svc.ListAdminJobs(context.Background(), &dto.ListAdminJobsRequest{AdminID: adminID})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, 7, jobs[1].ApplicationCount)
}

func TestJobService_DeleteJob(t *testing.T) {
	svc, mocks := setupJobServiceTest(t)
	jobID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mocks.jobRepo.EXPECT().Delete(gomock.Any(), jobID).Return(nil).Times(1)
		require.NoError(t, svc.DeleteJob(context.Background(), &dto.DeleteJobRequest{ID: jobID}))
	})

	t.Run("Not Found", func(t *testing.T) {
		mocks.jobRepo.EXPECT().Delete(gomock.Any(), jobID).Return(storage.ErrNotFound).Times(1)
		err := svc.DeleteJob(context.Background(), &dto.DeleteJobRequest{ID: jobID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}
