package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type MaturityModelRepo interface {
	Create(ctx context.Context, tx *gorm.DB, model *types.MaturityModel) (*types.MaturityModel, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.MaturityModel, error)
}

type maturityModelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMaturityModelRepo(db *gorm.DB, baseLog *logger.Logger) MaturityModelRepo {
	repoLog := baseLog.With("repo", "MaturityModelRepo")
	return &maturityModelRepo{db: db, log: repoLog}
}

func (mr *maturityModelRepo) Create(ctx context.Context, tx *gorm.DB, model *types.MaturityModel) (*types.MaturityModel, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return model, nil
}

func (mr *maturityModelRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.MaturityModel, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var result types.MaturityModel
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
