package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the HTTP surface for signup, login and
// profile management.
type AuthHandlerInterface interface {
	SignupUser(c *gin.Context)
	LoginUser(c *gin.Context)
	SignupAdmin(c *gin.Context)
	LoginAdmin(c *gin.Context)
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
	GetUserByID(c *gin.Context)
}

// JobHandlerInterface defines the HTTP surface for job postings.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	ListAdminJobs(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the HTTP surface for applications.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListMyApplications(c *gin.Context)
	ListJobApplications(c *gin.Context)
	UpdateStatus(c *gin.Context)
	GetApplicationByID(c *gin.Context)
}

// CatalogHandlerInterface defines the HTTP surface for reference data.
type CatalogHandlerInterface interface {
	CreateCompany(c *gin.Context)
	ListCompanies(c *gin.Context)
	CreateSkill(c *gin.Context)
	ListSkills(c *gin.Context)
}
