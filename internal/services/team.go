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

type CreateTeamInput struct {
	Name        string
	Nickname    string
	Purpose     string
	Description string
}

type TeamDetail struct {
	Team        *types.Team
	Company     *types.Company
	Assessments []*types.Assessment
}

type TeamService interface {
	Create(ctx context.Context, companyID uint, input CreateTeamInput) (*types.Team, error)
	GetDetail(ctx context.Context, id uint) (*TeamDetail, error)
}

type teamService struct {
	db             *gorm.DB
	log            *logger.Logger
	companyRepo    repos.CompanyRepo
	teamRepo       repos.TeamRepo
	assessmentRepo repos.AssessmentRepo
}

func NewTeamService(db *gorm.DB, log *logger.Logger, companyRepo repos.CompanyRepo, teamRepo repos.TeamRepo, assessmentRepo repos.AssessmentRepo) TeamService {
	serviceLog := log.With("service", "TeamService")
	return &teamService{
		db:             db,
		log:            serviceLog,
		companyRepo:    companyRepo,
		teamRepo:       teamRepo,
		assessmentRepo: assessmentRepo,
	}
}

func (ts *teamService) Create(ctx context.Context, companyID uint, input CreateTeamInput) (*types.Team, error) {
	name, err := requiredField(input.Name, "name")
	if err != nil {
		return nil, err
	}
	company, err := ts.companyRepo.GetByID(ctx, nil, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetch company: %w", err)
	}
	if company == nil {
		return nil, apierr.NotFound("company_not_found", fmt.Errorf("company not found"))
	}
	team := &types.Team{
		CompanyID:   companyID,
		Name:        name,
		Nickname:    optionalField(input.Nickname),
		Purpose:     optionalField(input.Purpose),
		Description: optionalField(input.Description),
	}
	created, err := ts.teamRepo.Create(ctx, nil, team)
	if err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	ts.log.Info("Team created", "team_id", created.ID, "company_id", companyID, "name", created.Name)
	return created, nil
}

func (ts *teamService) GetDetail(ctx context.Context, id uint) (*TeamDetail, error) {
	team, err := ts.teamRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("fetch team: %w", err)
	}
	if team == nil {
		return nil, apierr.NotFound("team_not_found", fmt.Errorf("team not found"))
	}
	company, err := ts.companyRepo.GetByID(ctx, nil, team.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("fetch company: %w", err)
	}
	assessments, err := ts.assessmentRepo.ListByTeam(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return &TeamDetail{Team: team, Company: company, Assessments: assessments}, nil
}
