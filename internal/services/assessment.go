package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
	"github.com/drjp81/devsecops-assessments/internal/repos"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

// rawListLimit caps the assessment detail raw-data listing to the most
// recent rows.
const rawListLimit = 20

type CreateAssessmentInput struct {
	Name           string
	AssessmentDate string
	Notes          string
}

type AddMetricInput struct {
	MetricName  string
	MetricValue float64
	Unit        string
}

type AddControlInput struct {
	Domain      string
	Control     string
	Standard    string
	Level       string
	EvidenceURI string
}

type AssessmentDetail struct {
	Assessment *types.Assessment
	Team       *types.Team
	Company    *types.Company
	Raw        []*types.RawData
	Metrics    []*types.Metric
	Scores     []*types.Score
	Controls   []*types.ControlEvidence
	IngestURL  string
}

type AssessmentService interface {
	Create(ctx context.Context, teamID uint, input CreateAssessmentInput) (*types.Assessment, error)
	GetDetail(ctx context.Context, id uint) (*AssessmentDetail, error)
	AddMetric(ctx context.Context, assessmentID uint, input AddMetricInput) (*types.Metric, error)
	AddControl(ctx context.Context, assessmentID uint, input AddControlInput) (*types.ControlEvidence, error)
	AddRawManual(ctx context.Context, assessmentID uint, source, payloadText string) (*types.RawData, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	companyRepo    repos.CompanyRepo
	teamRepo       repos.TeamRepo
	assessmentRepo repos.AssessmentRepo
	rawDataRepo    repos.RawDataRepo
	metricRepo     repos.MetricRepo
	scoreRepo      repos.ScoreRepo
	controlRepo    repos.ControlEvidenceRepo
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	companyRepo repos.CompanyRepo,
	teamRepo repos.TeamRepo,
	assessmentRepo repos.AssessmentRepo,
	rawDataRepo repos.RawDataRepo,
	metricRepo repos.MetricRepo,
	scoreRepo repos.ScoreRepo,
	controlRepo repos.ControlEvidenceRepo,
) AssessmentService {
	serviceLog := log.With("service", "AssessmentService")
	return &assessmentService{
		db:             db,
		log:            serviceLog,
		companyRepo:    companyRepo,
		teamRepo:       teamRepo,
		assessmentRepo: assessmentRepo,
		rawDataRepo:    rawDataRepo,
		metricRepo:     metricRepo,
		scoreRepo:      scoreRepo,
		controlRepo:    controlRepo,
	}
}

func (as *assessmentService) Create(ctx context.Context, teamID uint, input CreateAssessmentInput) (*types.Assessment, error) {
	name, err := requiredField(input.Name, "name")
	if err != nil {
		return nil, err
	}
	team, err := as.teamRepo.GetByID(ctx, nil, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetch team: %w", err)
	}
	if team == nil {
		return nil, apierr.NotFound("team_not_found", fmt.Errorf("team not found"))
	}

	// An unparseable date collapses to absent rather than failing the form.
	var assessmentDate *time.Time
	if input.AssessmentDate != "" {
		if parsed, parseErr := time.Parse("2006-01-02", input.AssessmentDate); parseErr == nil {
			assessmentDate = &parsed
		}
	}

	assessment := &types.Assessment{
		TeamID:         teamID,
		Name:           name,
		AssessmentDate: assessmentDate,
		GuidToken:      uuid.NewString(),
		Notes:          optionalField(input.Notes),
	}
	created, err := as.assessmentRepo.Create(ctx, nil, assessment)
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	as.log.Info("Assessment created", "assessment_id", created.ID, "team_id", teamID, "name", created.Name)
	return created, nil
}

func (as *assessmentService) GetDetail(ctx context.Context, id uint) (*AssessmentDetail, error) {
	assessment, err := as.assessmentRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("fetch assessment: %w", err)
	}
	if assessment == nil {
		return nil, apierr.NotFound("assessment_not_found", fmt.Errorf("assessment not found"))
	}
	team, err := as.teamRepo.GetByID(ctx, nil, assessment.TeamID)
	if err != nil {
		return nil, fmt.Errorf("fetch team: %w", err)
	}
	var company *types.Company
	if team != nil {
		company, err = as.companyRepo.GetByID(ctx, nil, team.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("fetch company: %w", err)
		}
	}
	raw, err := as.rawDataRepo.ListRecentByAssessment(ctx, nil, id, rawListLimit)
	if err != nil {
		return nil, fmt.Errorf("list raw data: %w", err)
	}
	metrics, err := as.metricRepo.ListByAssessment(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	scores, err := as.scoreRepo.ListByAssessment(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	controls, err := as.controlRepo.ListByAssessment(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("list controls: %w", err)
	}
	return &AssessmentDetail{
		Assessment: assessment,
		Team:       team,
		Company:    company,
		Raw:        raw,
		Metrics:    metrics,
		Scores:     scores,
		Controls:   controls,
		IngestURL:  fmt.Sprintf("/api/ingest/%s/raw", assessment.GuidToken),
	}, nil
}

func (as *assessmentService) AddMetric(ctx context.Context, assessmentID uint, input AddMetricInput) (*types.Metric, error) {
	name, err := requiredField(input.MetricName, "metric_name")
	if err != nil {
		return nil, err
	}
	if err := as.requireAssessment(ctx, assessmentID); err != nil {
		return nil, err
	}
	metric := &types.Metric{
		AssessmentID: assessmentID,
		MetricName:   name,
		MetricValue:  input.MetricValue,
		Unit:         optionalField(input.Unit),
		CollectedAt:  time.Now().UTC(),
	}
	created, err := as.metricRepo.Create(ctx, nil, metric)
	if err != nil {
		return nil, fmt.Errorf("create metric: %w", err)
	}
	return created, nil
}

func (as *assessmentService) AddControl(ctx context.Context, assessmentID uint, input AddControlInput) (*types.ControlEvidence, error) {
	control, err := requiredField(input.Control, "control")
	if err != nil {
		return nil, err
	}
	if err := as.requireAssessment(ctx, assessmentID); err != nil {
		return nil, err
	}
	evidence := &types.ControlEvidence{
		AssessmentID: assessmentID,
		Domain:       optionalField(input.Domain),
		Control:      control,
		Standard:     optionalField(input.Standard),
		Level:        optionalField(input.Level),
		EvidenceURI:  optionalField(input.EvidenceURI),
		CollectedAt:  time.Now().UTC(),
	}
	created, err := as.controlRepo.Create(ctx, nil, evidence)
	if err != nil {
		return nil, fmt.Errorf("create control evidence: %w", err)
	}
	return created, nil
}

// AddRawManual stores operator-pasted JSON text as-is after checking it
// actually parses.
func (as *assessmentService) AddRawManual(ctx context.Context, assessmentID uint, source, payloadText string) (*types.RawData, error) {
	if err := as.requireAssessment(ctx, assessmentID); err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal([]byte(payloadText), &parsed); err != nil {
		return nil, apierr.BadRequest("invalid_json", fmt.Errorf("invalid JSON: %v", err))
	}
	raw := &types.RawData{
		AssessmentID: assessmentID,
		Source:       optionalField(source),
		Payload:      datatypes.JSON([]byte(payloadText)),
		CollectedAt:  time.Now().UTC(),
	}
	created, err := as.rawDataRepo.Create(ctx, nil, raw)
	if err != nil {
		return nil, fmt.Errorf("create raw data: %w", err)
	}
	return created, nil
}

func (as *assessmentService) requireAssessment(ctx context.Context, assessmentID uint) error {
	assessment, err := as.assessmentRepo.GetByID(ctx, nil, assessmentID)
	if err != nil {
		return fmt.Errorf("fetch assessment: %w", err)
	}
	if assessment == nil {
		return apierr.NotFound("assessment_not_found", fmt.Errorf("assessment not found"))
	}
	return nil
}
