package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type RawDataRepo interface {
	Create(ctx context.Context, tx *gorm.DB, raw *types.RawData) (*types.RawData, error)
	ListRecentByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint, limit int) ([]*types.RawData, error)
	CountByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) (int64, error)
}

type rawDataRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRawDataRepo(db *gorm.DB, baseLog *logger.Logger) RawDataRepo {
	repoLog := baseLog.With("repo", "RawDataRepo")
	return &rawDataRepo{db: db, log: repoLog}
}

func (rr *rawDataRepo) Create(ctx context.Context, tx *gorm.DB, raw *types.RawData) (*types.RawData, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(raw).Error; err != nil {
		return nil, err
	}
	return raw, nil
}

func (rr *rawDataRepo) ListRecentByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint, limit int) ([]*types.RawData, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.RawData
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("collected_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rr *rawDataRepo) CountByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.RawData{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
