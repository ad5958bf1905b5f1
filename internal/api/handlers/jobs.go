package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	jobService services.JobService
	validator  *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		validator:  validate,
	}
}

// Compile-time check to ensure JobHandler implements JobHandlerInterface
var _ JobHandlerInterface = (*JobHandler)(nil)

// CreateJob godoc
//	@Summary		Create a job posting
//	@Description	Creates a job owned by the calling admin. The human-readable job_id must be unique.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Job details"
//	@Success		201	{object}	models.Job				"Job created"
//	@Failure		400	{object}	map[string]string		"Bad Request"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		403	{object}	map[string]string		"Forbidden"
//	@Failure		409	{object}	map[string]string		"Duplicate job_id"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs [post]
//	@Security		BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	admin, err := middleware.GetCurrentAdminFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.PostedByAdminID = admin.ID

	job, err := h.jobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "A job with this job_id already exists"})
			return
		}
		log.Printf("CreateJob: Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// ListJobs godoc
//	@Summary		List open jobs
//	@Description	Public listing of open jobs. Filters combine with AND; draft and closed jobs never appear.
//	@Tags			jobs
//	@Produce		json
//	@Param			keyword		query		string				false	"Substring match on title"
//	@Param			location	query		string				false	"Substring match on city or state"
//	@Param			job_type	query		string				false	"Exact job type"	Enums(full-time, part-time, internship, contract)
//	@Param			work_mode	query		string				false	"Exact work mode"	Enums(remote, hybrid, onsite)
//	@Param			role		query		string				false	"Substring match on title"
//	@Success		200			{array}		models.Job			"Open jobs, newest first"
//	@Failure		400			{object}	map[string]string	"Bad Request"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.jobService.ListOpenJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListJobs: Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
//	@Summary		Get a job by id
//	@Description	Public read of a single job with its company and skills expanded. Jobs of any status are readable by id.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string					true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.JobDetailResponse	"Job details"
//	@Failure		400	{object}	map[string]string		"Invalid ID format"
//	@Failure		404	{object}	map[string]string		"Job Not Found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.GetJobByIDRequest{ID: jobID}
	job, err := h.jobService.GetJobByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		log.Printf("GetJobByID: Error fetching job %s: %v", idStr, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListAdminJobs godoc
//	@Summary		List own jobs with application counts
//	@Description	Lists every job posted by the calling admin, regardless of status, each with its live application count.
//	@Tags			jobs
//	@Produce		json
//	@Success		200	{array}		models.JobWithCount	"Jobs, newest first"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/admin/all [get]
//	@Security		BearerAuth
func (h *JobHandler) ListAdminJobs(c *gin.Context) {
	admin, err := middleware.GetCurrentAdminFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.ListAdminJobsRequest{AdminID: admin.ID}
	jobs, err := h.jobService.ListAdminJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListAdminJobs: Error listing jobs for admin %s: %v", admin.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// UpdateJob godoc
//	@Summary		Update a job posting
//	@Description	Overwrites provided fields on an existing job. Requirements and responsibilities are re-normalized on write.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string					true	"Job ID"	Format(uuid)
//	@Param			job	body		dto.UpdateJobRequest	true	"Fields to update"
//	@Success		200	{object}	models.Job				"Updated job"
//	@Failure		400	{object}	map[string]string		"Bad Request"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		403	{object}	map[string]string		"Forbidden"
//	@Failure		404	{object}	map[string]string		"Job Not Found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{id} [put]
//	@Security		BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = jobID

	job, err := h.jobService.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		log.Printf("UpdateJob: Error updating job %s: %v", idStr, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
//	@Summary		Delete a job posting
//	@Description	Removes the job. Existing applications are kept and keep their snapshot data.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	map[string]string	"Deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden"
//	@Failure		404	{object}	map[string]string	"Job Not Found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{id} [delete]
//	@Security		BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.DeleteJobRequest{ID: jobID}
	if err := h.jobService.DeleteJob(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		log.Printf("DeleteJob: Error deleting job %s: %v", idStr, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
