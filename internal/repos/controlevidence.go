package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type ControlEvidenceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, control *types.ControlEvidence) (*types.ControlEvidence, error)
	ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.ControlEvidence, error)
}

type controlEvidenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewControlEvidenceRepo(db *gorm.DB, baseLog *logger.Logger) ControlEvidenceRepo {
	repoLog := baseLog.With("repo", "ControlEvidenceRepo")
	return &controlEvidenceRepo{db: db, log: repoLog}
}

func (cr *controlEvidenceRepo) Create(ctx context.Context, tx *gorm.DB, control *types.ControlEvidence) (*types.ControlEvidence, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(control).Error; err != nil {
		return nil, err
	}
	return control, nil
}

func (cr *controlEvidenceRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.ControlEvidence, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.ControlEvidence
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("collected_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
