package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type PracticeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, practice *types.Practice) (*types.Practice, error)
	GetByModelAndCode(ctx context.Context, tx *gorm.DB, modelID uint, code string) (*types.Practice, error)
}

type practiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPracticeRepo(db *gorm.DB, baseLog *logger.Logger) PracticeRepo {
	repoLog := baseLog.With("repo", "PracticeRepo")
	return &practiceRepo{db: db, log: repoLog}
}

func (pr *practiceRepo) Create(ctx context.Context, tx *gorm.DB, practice *types.Practice) (*types.Practice, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(practice).Error; err != nil {
		return nil, err
	}
	return practice, nil
}

func (pr *practiceRepo) GetByModelAndCode(ctx context.Context, tx *gorm.DB, modelID uint, code string) (*types.Practice, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Practice
	if err := transaction.WithContext(ctx).
		Where("model_id = ? AND code = ?", modelID, code).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
