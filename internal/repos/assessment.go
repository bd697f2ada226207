package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Assessment, error)
	GetByToken(ctx context.Context, tx *gorm.DB, guidToken string) (*types.Assessment, error)
	ListByTeam(ctx context.Context, tx *gorm.DB, teamID uint) ([]*types.Assessment, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	repoLog := baseLog.With("repo", "AssessmentRepo")
	return &assessmentRepo{db: db, log: repoLog}
}

func (ar *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	if err := transaction.WithContext(ctx).Create(assessment).Error; err != nil {
		return nil, err
	}
	return assessment, nil
}

func (ar *assessmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var result types.Assessment
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (ar *assessmentRepo) GetByToken(ctx context.Context, tx *gorm.DB, guidToken string) (*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var result types.Assessment
	if err := transaction.WithContext(ctx).
		Where("guid_token = ?", guidToken).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// ListByTeam orders by assessment date descending, rows without a date last.
func (ar *assessmentRepo) ListByTeam(ctx context.Context, tx *gorm.DB, teamID uint) ([]*types.Assessment, error) {
	transaction := tx
	if transaction == nil {
		transaction = ar.db
	}
	var results []*types.Assessment
	if err := transaction.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("assessment_date IS NULL, assessment_date DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
