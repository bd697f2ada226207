package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
	"github.com/drjp81/devsecops-assessments/internal/repos"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type AttachScoreInput struct {
	ModelName    string
	Code         string
	PracticeName string
	Level        int
	EvidenceURI  string
	Notes        string
}

// ScoreService attaches a score to an assessment, finding or creating the
// maturity model and practice it references.
type ScoreService interface {
	Attach(ctx context.Context, assessmentID uint, input AttachScoreInput) (*types.Score, error)
}

type scoreService struct {
	db             *gorm.DB
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
	modelRepo      repos.MaturityModelRepo
	practiceRepo   repos.PracticeRepo
	scoreRepo      repos.ScoreRepo
}

func NewScoreService(db *gorm.DB, log *logger.Logger, assessmentRepo repos.AssessmentRepo, modelRepo repos.MaturityModelRepo, practiceRepo repos.PracticeRepo, scoreRepo repos.ScoreRepo) ScoreService {
	serviceLog := log.With("service", "ScoreService")
	return &scoreService{
		db:             db,
		log:            serviceLog,
		assessmentRepo: assessmentRepo,
		modelRepo:      modelRepo,
		practiceRepo:   practiceRepo,
		scoreRepo:      scoreRepo,
	}
}

// Attach runs the whole resolve-and-insert sequence in one transaction: a
// failure anywhere rolls back any model/practice rows created along the way,
// so no orphans become visible to other readers.
func (ss *scoreService) Attach(ctx context.Context, assessmentID uint, input AttachScoreInput) (*types.Score, error) {
	modelName, err := requiredField(input.ModelName, "model_name")
	if err != nil {
		return nil, err
	}
	code, err := requiredField(input.Code, "code")
	if err != nil {
		return nil, err
	}
	if input.Level < 0 || input.Level > 3 {
		return nil, apierr.BadRequest("invalid_level", fmt.Errorf("level must be between 0 and 3"))
	}

	assessment, err := ss.assessmentRepo.GetByID(ctx, nil, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("fetch assessment: %w", err)
	}
	if assessment == nil {
		return nil, apierr.NotFound("assessment_not_found", fmt.Errorf("assessment not found"))
	}

	var score *types.Score
	err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model, err := ss.resolveModel(ctx, tx, modelName)
		if err != nil {
			return err
		}
		practice, err := ss.resolvePractice(ctx, tx, model.ID, code, input.PracticeName)
		if err != nil {
			return err
		}
		score = &types.Score{
			AssessmentID: assessmentID,
			PracticeID:   practice.ID,
			Level:        input.Level,
			EvidenceURI:  optionalField(input.EvidenceURI),
			Notes:        optionalField(input.Notes),
		}
		if _, err := ss.scoreRepo.Create(ctx, tx, score); err != nil {
			return fmt.Errorf("create score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ss.log.Info("Score attached", "assessment_id", assessmentID, "practice_id", score.PracticeID, "level", score.Level)
	return score, nil
}

// resolveModel finds the maturity model by name, creating it when absent.
// A concurrent creator losing the unique-index race is answered by
// re-running the lookup.
func (ss *scoreService) resolveModel(ctx context.Context, tx *gorm.DB, name string) (*types.MaturityModel, error) {
	model, err := ss.modelRepo.GetByName(ctx, tx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup maturity model: %w", err)
	}
	if model != nil {
		return model, nil
	}
	model, err = ss.modelRepo.Create(ctx, tx, &types.MaturityModel{Name: name})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ss.modelRepo.GetByName(ctx, tx, name)
		}
		return nil, fmt.Errorf("create maturity model: %w", err)
	}
	return model, nil
}

// resolvePractice finds the practice by (model, code), creating it when
// absent. The supplied display name is used for new rows, falling back to
// the code itself.
func (ss *scoreService) resolvePractice(ctx context.Context, tx *gorm.DB, modelID uint, code, practiceName string) (*types.Practice, error) {
	practice, err := ss.practiceRepo.GetByModelAndCode(ctx, tx, modelID, code)
	if err != nil {
		return nil, fmt.Errorf("lookup practice: %w", err)
	}
	if practice != nil {
		return practice, nil
	}
	name := code
	if trimmed := optionalField(practiceName); trimmed != nil {
		name = *trimmed
	}
	practice, err = ss.practiceRepo.Create(ctx, tx, &types.Practice{
		ModelID: modelID,
		Code:    code,
		Name:    name,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ss.practiceRepo.GetByModelAndCode(ctx, tx, modelID, code)
		}
		return nil, fmt.Errorf("create practice: %w", err)
	}
	return practice, nil
}
