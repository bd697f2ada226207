package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type MetricRepo interface {
	Create(ctx context.Context, tx *gorm.DB, metric *types.Metric) (*types.Metric, error)
	ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Metric, error)
}

type metricRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetricRepo(db *gorm.DB, baseLog *logger.Logger) MetricRepo {
	repoLog := baseLog.With("repo", "MetricRepo")
	return &metricRepo{db: db, log: repoLog}
}

func (mr *metricRepo) Create(ctx context.Context, tx *gorm.DB, metric *types.Metric) (*types.Metric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(metric).Error; err != nil {
		return nil, err
	}
	return metric, nil
}

func (mr *metricRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Metric, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var results []*types.Metric
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("collected_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
