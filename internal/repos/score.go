package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type ScoreRepo interface {
	Create(ctx context.Context, tx *gorm.DB, score *types.Score) (*types.Score, error)
	ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Score, error)
}

type scoreRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScoreRepo(db *gorm.DB, baseLog *logger.Logger) ScoreRepo {
	repoLog := baseLog.With("repo", "ScoreRepo")
	return &scoreRepo{db: db, log: repoLog}
}

func (sr *scoreRepo) Create(ctx context.Context, tx *gorm.DB, score *types.Score) (*types.Score, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(score).Error; err != nil {
		return nil, err
	}
	return score, nil
}

// ListByAssessment preloads the practice and its model so listings can show
// "SAMM TST.1" without extra queries.
func (sr *scoreRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID uint) ([]*types.Score, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Score
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Preload("Practice").
		Preload("Practice.Model").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
