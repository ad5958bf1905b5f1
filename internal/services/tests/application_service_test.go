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

type applicationServiceMocks struct {
	appRepo  *mock_storage.MockApplicationRepository
	jobRepo  *mock_storage.MockJobRepository
	userRepo *mock_storage.MockUserRepository
}

func setupApplicationServiceTest(t *testing.T) (services.ApplicationService, applicationServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := applicationServiceMocks{
		appRepo:  mock_storage.NewMockApplicationRepository(ctrl),
		jobRepo:  mock_storage.NewMockJobRepository(ctrl),
		userRepo: mock_storage.NewMockUserRepository(ctrl),
	}
	svc := services.NewApplicationService(mocks.appRepo, mocks.jobRepo, mocks.userRepo)
	return svc, mocks
}

func TestApplicationService_Apply(t *testing.T) {
	jobID := uuid.New()
	userID := uuid.New()

	openJob := &models.Job{ID: jobID, JobID: "JOB1001", Status: models.JobStatusOpen}

	applyReq := func() *dto.ApplyRequest {
		return &dto.ApplyRequest{
			JobID:           jobID,
			UserID:          userID,
			ResumeURL:       "https://cdn.example.com/resume.pdf",
			Degree:          ptr("B.Tech"),
			ExperienceYears: intPtr(3),
		}
	}

	t.Run("Success keeps submitted snapshot", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)
		req := applyReq()

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(openJob, nil).Times(1)
		mocks.appRepo.EXPECT().GetByJobAndUser(gomock.Any(), jobID, userID).Return(nil, storage.ErrNotFound).Times(1)
		mocks.appRepo.EXPECT().Create(gomock.Any(), req).Return(&models.Application{
			ID:                      uuid.New(),
			JobID:                   jobID,
			UserID:                  userID,
			ResumeURL:               req.ResumeURL,
			Status:                  models.ApplicationStatusApplied,
			SnapshotDegree:          req.Degree,
			SnapshotExperienceYears: req.ExperienceYears,
		}, nil).Times(1)

		application, err := svc.Apply(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusApplied, application.Status)
		require.NotNil(t, application.SnapshotDegree)
		assert.Equal(t, "B.Tech", *application.SnapshotDegree)
	})

	t.Run("Unknown job", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)
		req := applyReq()

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)

		application, err := svc.Apply(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, application)
	})

	t.Run("Job not open", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)
		req := applyReq()

		closedJob := &models.Job{ID: jobID, JobID: "JOB1001", Status: models.JobStatusClosed}
		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(closedJob, nil).Times(1)

		application, err := svc.Apply(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidState))
		assert.Nil(t, application)
	})

	t.Run("Draft job behaves like closed", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)
		req := applyReq()

		draftJob := &models.Job{ID: jobID, JobID: "JOB1001", Status: models.JobStatusDraft}
		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(draftJob, nil).Times(1)

		_, err := svc.Apply(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidState))
	})

	t.Run("Duplicate caught by pre-check", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)
		req := applyReq()

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(openJob, nil).Times(1)
		mocks.appRepo.EXPECT().GetByJobAndUser(gomock.Any(), jobID, userID).
			Return(&models.Application{ID: uuid.New(), JobID: jobID, UserID: userID}, nil).Times(1)

		application, err := svc.Apply(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
		assert.Nil(t, application)
	})

	t.Run("Duplicate caught by unique index race", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)
		req := applyReq()

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(openJob, nil).Times(1)
		mocks.appRepo.EXPECT().GetByJobAndUser(gomock.Any(), jobID, userID).Return(nil, storage.ErrNotFound).Times(1)
		mocks.appRepo.EXPECT().Create(gomock.Any(), req).Return(nil, storage.ErrConflict).Times(1)

		application, err := svc.Apply(context.Background(), req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrConflict))
		assert.Nil(t, application)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	applicationID := uuid.New()

	t.Run("Valid status", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.appRepo.EXPECT().UpdateStatus(gomock.Any(), applicationID, models.ApplicationStatusShortlisted).
			Return(&models.Application{ID: applicationID, Status: models.ApplicationStatusShortlisted}, nil).Times(1)

		application, err := svc.UpdateStatus(context.Background(), &dto.UpdateApplicationStatusRequest{
			ID:     applicationID,
			Status: models.ApplicationStatusShortlisted,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusShortlisted, application.Status)
	})

	t.Run("Backward move hired to rejected is allowed", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.appRepo.EXPECT().UpdateStatus(gomock.Any(), applicationID, models.ApplicationStatusRejected).
			Return(&models.Application{ID: applicationID, Status: models.ApplicationStatusRejected}, nil).Times(1)

		application, err := svc.UpdateStatus(context.Background(), &dto.UpdateApplicationStatusRequest{
			ID:     applicationID,
			Status: models.ApplicationStatusRejected,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusRejected, application.Status)
	})

	t.Run("Invalid status never reaches the repository", func(t *testing.T) {
		svc, _ := setupApplicationServiceTest(t)

		application, err := svc.UpdateStatus(context.Background(), &dto.UpdateApplicationStatusRequest{
			ID:     applicationID,
			Status: models.ApplicationStatus("archived"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidStatus))
		assert.Nil(t, application)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.appRepo.EXPECT().UpdateStatus(gomock.Any(), applicationID, models.ApplicationStatusHired).
			Return(nil, storage.ErrNotFound).Times(1)

		_, err := svc.UpdateStatus(context.Background(), &dto.UpdateApplicationStatusRequest{
			ID:     applicationID,
			Status: models.ApplicationStatusHired,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

func TestApplicationService_GetApplicationByID(t *testing.T) {
	applicationID := uuid.New()
	jobID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	stored := &models.Application{
		ID:     applicationID,
		JobID:  jobID,
		UserID: ownerID,
		Status: models.ApplicationStatusApplied,
	}

	t.Run("Owner can read", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(stored, nil).Times(1)
		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID, JobID: "JOB1001"}, nil).Times(1)
		mocks.userRepo.EXPECT().GetByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID, PasswordHash: "hash"}, nil).Times(1)

		detail, err := svc.GetApplicationByID(context.Background(), &dto.GetApplicationByIDRequest{
			ID:            applicationID,
			RequesterID:   ownerID,
			RequesterRole: models.RoleUser,
		})
		require.NoError(t, err)
		require.NotNil(t, detail.Job)
		require.NotNil(t, detail.User)
		assert.Empty(t, detail.User.PasswordHash)
	})

	t.Run("Any admin can read", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(stored, nil).Times(1)
		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID}, nil).Times(1)
		mocks.userRepo.EXPECT().GetByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID}, nil).Times(1)

		_, err := svc.GetApplicationByID(context.Background(), &dto.GetApplicationByIDRequest{
			ID:            applicationID,
			RequesterID:   strangerID, // some other principal, but an admin
			RequesterRole: models.RoleAdmin,
		})
		require.NoError(t, err)
	})

	t.Run("Other user is forbidden", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(stored, nil).Times(1)

		detail, err := svc.GetApplicationByID(context.Background(), &dto.GetApplicationByIDRequest{
			ID:            applicationID,
			RequesterID:   strangerID,
			RequesterRole: models.RoleUser,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		assert.Nil(t, detail)
	})

	t.Run("Deleted job leaves nil job side", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.appRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(stored, nil).Times(1)
		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)
		mocks.userRepo.EXPECT().GetByID(gomock.Any(), ownerID).Return(&models.User{ID: ownerID}, nil).Times(1)

		detail, err := svc.GetApplicationByID(context.Background(), &dto.GetApplicationByIDRequest{
			ID:            applicationID,
			RequesterID:   ownerID,
			RequesterRole: models.RoleUser,
		})
		require.NoError(t, err)
		assert.Nil(t, detail.Job)
		assert.NotNil(t, detail.User)
	})
}

func TestApplicationService_ListJobApplications(t *testing.T) {
	jobID := uuid.New()

	t.Run("Unknown job is NotFound, not an empty list", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)

		applications, err := svc.ListJobApplications(context.Background(), &dto.ListJobApplicationsRequest{JobID: jobID})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrNotFound))
		assert.Nil(t, applications)
	})

	t.Run("Success", func(t *testing.T) {
		svc, mocks := setupApplicationServiceTest(t)

		mocks.jobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(&models.Job{ID: jobID}, nil).Times(1)
		mocks.appRepo.EXPECT().ListByJob(gomock.Any(), jobID).Return([]models.ApplicationWithUser{
			{Application: models.Application{ID: uuid.New(), JobID: jobID}, User: models.ApplicantProfile{FirstName: "Asha"}},
		}, nil).Times(1)

		applications, err := svc.ListJobApplications(context.Background(), &dto.ListJobApplicationsRequest{JobID: jobID})
		require.NoError(t, err)
		require.Len(t, applications, 1)
		assert.Equal(t, "Asha", applications[0].User.FirstName)
	})
}

func TestApplicationService_ListMyApplications(t *testing.T) {
	svc, mocks := setupApplicationServiceTest(t)
	userID := uuid.New()

	mocks.appRepo.EXPECT().ListByUser(gomock.Any(), userID).Return([]models.ApplicationWithJob{
		{
			Application: models.Application{ID: uuid.New(), UserID: userID, Status: models.ApplicationStatusApplied},
			Job:         models.JobSummary{Title: "Backend Engineer", Status: models.JobStatusOpen},
		},
	}, nil).Times(1)

	applications, err := svc.ListMyApplications(context.Background(), &dto.ListMyApplicationsRequest{UserID: userID})
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, "Backend Engineer", applications[0].Job.Title)
}
