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

type catalogService struct {
	companyRepo storage.CompanyRepository
	skillRepo   storage.SkillRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(companyRepo storage.CompanyRepository, skillRepo storage.SkillRepository) CatalogService {
	return &catalogService{
		companyRepo: companyRepo,
		skillRepo:   skillRepo,
	}
}

func (s *catalogService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	company, err := s.companyRepo.Create(ctx, req)
	if err != nil {
		log.Printf("CatalogService: Error creating company: %v", err)
		return nil, fmt.Errorf("internal error creating company: %w", err)
	}
	return company, nil
}

func (s *catalogService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		log.Printf("CatalogService: Error listing companies: %v", err)
		return nil, fmt.Errorf("internal error listing companies: %w", err)
	}
	return companies, nil
}

func (s *catalogService) CreateSkill(ctx context.Context, req *dto.CreateSkillRequest) (*models.Skill, error) {
	skill, err := s.skillRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: skill %q already exists", ErrConflict, req.SkillName)
		}
		log.Printf("CatalogService: Error creating skill: %v", err)
		return nil, fmt.Errorf("internal error creating skill: %w", err)
	}
	return skill, nil
}

func (s *catalogService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skillRepo.List(ctx)
	if err != nil {
		log.Printf("CatalogService: Error listing skills: %v", err)
		return nil, fmt.Errorf("internal error listing skills: %w", err)
	}
	return skills, nil
}
