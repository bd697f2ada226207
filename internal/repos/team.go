package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type TeamRepo interface {
	Create(ctx context.Context, tx *gorm.DB, team *types.Team) (*types.Team, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Team, error)
	ListByCompany(ctx context.Context, tx *gorm.DB, companyID uint) ([]*types.Team, error)
}

type teamRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeamRepo(db *gorm.DB, baseLog *logger.Logger) TeamRepo {
	repoLog := baseLog.With("repo", "TeamRepo")
	return &teamRepo{db: db, log: repoLog}
}

func (tr *teamRepo) Create(ctx context.Context, tx *gorm.DB, team *types.Team) (*types.Team, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

func (tr *teamRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Team, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var result types.Team
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (tr *teamRepo) ListByCompany(ctx context.Context, tx *gorm.DB, companyID uint) ([]*types.Team, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.Team
	if err := transaction.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
