package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
	"github.com/drjp81/devsecops-assessments/internal/repos"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type CreateCompanyInput struct {
	Name          string
	Address       string
	ContactPerson string
}

type CompanyDetail struct {
	Company *types.Company
	Teams   []*types.Team
}

type CompanyService interface {
	Create(ctx context.Context, input CreateCompanyInput) (*types.Company, error)
	List(ctx context.Context) ([]*types.Company, error)
	GetDetail(ctx context.Context, id uint) (*CompanyDetail, error)
}

type companyService struct {
	db          *gorm.DB
	log         *logger.Logger
	companyRepo repos.CompanyRepo
	teamRepo    repos.TeamRepo
}

func NewCompanyService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, teamRepo repos.TeamRepo) CompanyService {
	serviceLog := log.With("service", "CompanyService")
	return &companyService{
		db:          db,
		log:         serviceLog,
		companyRepo: companyRepo,
		teamRepo:    teamRepo,
	}
}

func (cs *companyService) Create(ctx context.Context, input CreateCompanyInput) (*types.Company, error) {
	name, err := requiredField(input.Name, "name")
	if err != nil {
		return nil, err
	}
	company := &types.Company{
		Name:          name,
		Address:       optionalField(input.Address),
		ContactPerson: optionalField(input.ContactPerson),
	}
	created, err := cs.companyRepo.Create(ctx, nil, company)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	cs.log.Info("Company created", "company_id", created.ID, "name", created.Name)
	return created, nil
}

func (cs *companyService) List(ctx context.Context) ([]*types.Company, error) {
	return cs.companyRepo.ListByName(ctx, nil)
}

func (cs *companyService) GetDetail(ctx context.Context, id uint) (*CompanyDetail, error) {
	company, err := cs.companyRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("fetch company: %w", err)
	}
	if company == nil {
		return nil, apierr.NotFound("company_not_found", fmt.Errorf("company not found"))
	}
	teams, err := cs.teamRepo.ListByCompany(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return &CompanyDetail{Company: company, Teams: teams}, nil
}
