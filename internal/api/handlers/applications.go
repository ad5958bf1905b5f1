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

// ApplicationHandler holds dependencies for application ledger operations.
type ApplicationHandler struct {
	applicationService services.ApplicationService
	validator          *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applicationService services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		validator:          validate,
	}
}

// Compile-time check to ensure ApplicationHandler implements ApplicationHandlerInterface
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)

// Apply godoc
//	@Summary		Apply to a job
//	@Description	Creates an application for the calling user. One application per user per job; the job must currently be open.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.ApplyRequest	true	"Application details"
//	@Success		201			{object}	models.Application	"Application created"
//	@Failure		400			{object}	map[string]string	"Bad Request - invalid input, closed job, or duplicate application"
//	@Failure		401			{object}	map[string]string	"Unauthorized"
//	@Failure		403			{object}	map[string]string	"Forbidden"
//	@Failure		404			{object}	map[string]string	"Job Not Found"
//	@Failure		500			{object}	map[string]string	"Internal Server Error"
//	@Router			/applications [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, err := middleware.GetCurrentUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.UserID = user.ID

	application, err := h.applicationService.Apply(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, services.ErrInvalidState):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This job is no longer accepting applications"})
		case errors.Is(err, services.ErrConflict):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already applied for this job"})
		default:
			log.Printf("Apply: Error creating application for user %s: %v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListMyApplications godoc
//	@Summary		List own applications
//	@Description	Lists the calling user's applications, newest first, each with a summary of its job. Applications to deleted jobs still appear.
//	@Tags			applications
//	@Produce		json
//	@Success		200	{array}		models.ApplicationWithJob	"Applications, newest first"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		403	{object}	map[string]string			"Forbidden"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/my/all [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	user, err := middleware.GetCurrentUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.ListMyApplicationsRequest{UserID: user.ID}
	applications, err := h.applicationService.ListMyApplications(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListMyApplications: Error listing applications for user %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListJobApplications godoc
//	@Summary		List applications for a job
//	@Description	Lists every application submitted to one job, with applicant profiles. Admin only.
//	@Tags			applications
//	@Produce		json
//	@Param			jobId	path		string						true	"Job ID"	Format(uuid)
//	@Success		200		{array}		models.ApplicationWithUser	"Applications, newest first"
//	@Failure		400		{object}	map[string]string			"Invalid ID format"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden"
//	@Failure		404		{object}	map[string]string			"Job Not Found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/job/{jobId} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	idStr := c.Param("jobId")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	req := dto.ListJobApplicationsRequest{JobID: jobID}
	applications, err := h.applicationService.ListJobApplications(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		log.Printf("ListJobApplications: Error listing applications for job %s: %v", idStr, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateStatus godoc
//	@Summary		Update an application's status
//	@Description	Sets the application to any of the five statuses. No transition ordering is enforced.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Application ID"	Format(uuid)
//	@Param			status	body		dto.UpdateApplicationStatusRequest	true	"New status"
//	@Success		200		{object}	models.Application					"Updated application"
//	@Failure		400		{object}	map[string]string					"Bad Request - invalid status value"
//	@Failure		401		{object}	map[string]string					"Unauthorized"
//	@Failure		403		{object}	map[string]string					"Forbidden"
//	@Failure		404		{object}	map[string]string					"Application Not Found"
//	@Failure		500		{object}	map[string]string					"Internal Server Error"
//	@Router			/applications/{id}/status [put]
//	@Security		BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	idStr := c.Param("id")
	applicationID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	req.ID = applicationID

	application, err := h.applicationService.UpdateStatus(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application status"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		default:
			log.Printf("UpdateStatus: Error updating application %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application status"})
		}
		return
	}

	c.JSON(http.StatusOK, application)
}

// GetApplicationByID godoc
//	@Summary		Get an application by id
//	@Description	Returns one application with its job and applicant expanded. Visible to any admin or to the owning user.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string							true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplicationDetailResponse	"Application details"
//	@Failure		400	{object}	map[string]string				"Invalid ID format"
//	@Failure		401	{object}	map[string]string				"Unauthorized"
//	@Failure		403	{object}	map[string]string				"Forbidden"
//	@Failure		404	{object}	map[string]string				"Application Not Found"
//	@Failure		500	{object}	map[string]string				"Internal Server Error"
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	idStr := c.Param("id")
	applicationID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	principalID, err := middleware.GetPrincipalIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role, err := middleware.GetRoleFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	req := dto.GetApplicationByIDRequest{
		ID:            applicationID,
		RequesterID:   principalID,
		RequesterRole: role,
	}
	application, err := h.applicationService.GetApplicationByID(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this application"})
		default:
			log.Printf("GetApplicationByID: Error fetching application %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, application)
}
