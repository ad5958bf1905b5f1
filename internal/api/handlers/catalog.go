package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// CatalogHandler holds dependencies for the company/skill reference data.
type CatalogHandler struct {
	catalogService services.CatalogService
	validator      *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService services.CatalogService, validate *validator.Validate) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validate,
	}
}

// Compile-time check to ensure CatalogHandler implements CatalogHandlerInterface
var _ CatalogHandlerInterface = (*CatalogHandler)(nil)

// CreateCompany godoc
//	@Summary		Create a company
//	@Description	Adds a company to the catalog. Admin only.
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			company	body		dto.CreateCompanyRequest	true	"Company details"
//	@Success		201		{object}	models.Company				"Company created"
//	@Failure		400		{object}	map[string]string			"Bad Request"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/companies [post]
//	@Security		BearerAuth
func (h *CatalogHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.catalogService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		log.Printf("CreateCompany: Error creating company: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company"})
		return
	}

	c.JSON(http.StatusCreated, company)
}

// ListCompanies godoc
//	@Summary		List companies
//	@Description	Public listing of every company in the catalog.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		models.Company		"Companies"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/companies [get]
func (h *CatalogHandler) ListCompanies(c *gin.Context) {
	companies, err := h.catalogService.ListCompanies(c.Request.Context())
	if err != nil {
		log.Printf("ListCompanies: Error listing companies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve companies"})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// CreateSkill godoc
//	@Summary		Create a skill
//	@Description	Adds a skill to the catalog. Skill names are unique. Admin only.
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			skill	body		dto.CreateSkillRequest	true	"Skill details"
//	@Success		201		{object}	models.Skill			"Skill created"
//	@Failure		400		{object}	map[string]string		"Bad Request"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		403		{object}	map[string]string		"Forbidden"
//	@Failure		409		{object}	map[string]string		"Duplicate skill name"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/skills [post]
//	@Security		BearerAuth
func (h *CatalogHandler) CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	skill, err := h.catalogService.CreateSkill(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "A skill with this name already exists"})
			return
		}
		log.Printf("CreateSkill: Error creating skill: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create skill"})
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// ListSkills godoc
//	@Summary		List skills
//	@Description	Public listing of every skill in the catalog.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{array}		models.Skill		"Skills"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/skills [get]
func (h *CatalogHandler) ListSkills(c *gin.Context) {
	skills, err := h.catalogService.ListSkills(c.Request.Context())
	if err != nil {
		log.Printf("ListSkills: Error listing skills: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve skills"})
		return
	}

	c.JSON(http.StatusOK, skills)
}
