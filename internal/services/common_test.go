package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/repos"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type testEnv struct {
	db         *gorm.DB
	company    CompanyService
	team       TeamService
	assessment AssessmentService
	score      ScoreService
	ingest     IngestService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(
		&types.Company{},
		&types.Team{},
		&types.Assessment{},
		&types.RawData{},
		&types.Metric{},
		&types.MaturityModel{},
		&types.Practice{},
		&types.Score{},
		&types.ControlEvidence{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	log := logger.NewNop()
	companyRepo := repos.NewCompanyRepo(gdb, log)
	teamRepo := repos.NewTeamRepo(gdb, log)
	assessmentRepo := repos.NewAssessmentRepo(gdb, log)
	rawDataRepo := repos.NewRawDataRepo(gdb, log)
	metricRepo := repos.NewMetricRepo(gdb, log)
	modelRepo := repos.NewMaturityModelRepo(gdb, log)
	practiceRepo := repos.NewPracticeRepo(gdb, log)
	scoreRepo := repos.NewScoreRepo(gdb, log)
	controlRepo := repos.NewControlEvidenceRepo(gdb, log)

	return &testEnv{
		db:      gdb,
		company: NewCompanyService(gdb, log, companyRepo, teamRepo),
		team:    NewTeamService(gdb, log, companyRepo, teamRepo, assessmentRepo),
		assessment: NewAssessmentService(
			gdb, log,
			companyRepo, teamRepo, assessmentRepo,
			rawDataRepo, metricRepo, scoreRepo, controlRepo,
		),
		score:  NewScoreService(gdb, log, assessmentRepo, modelRepo, practiceRepo, scoreRepo),
		ingest: NewIngestService(gdb, log, assessmentRepo, rawDataRepo),
	}
}

func (env *testEnv) seedAssessment(t *testing.T) *types.Assessment {
	t.Helper()
	ctx := context.Background()
	company, err := env.company.Create(ctx, CreateCompanyInput{Name: "Acme " + uuid.NewString()})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	team, err := env.team.Create(ctx, company.ID, CreateTeamInput{Name: "Platform"})
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	assessment, err := env.assessment.Create(ctx, team.ID, CreateAssessmentInput{Name: "Q1 review"})
	if err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	return assessment
}

func (env *testEnv) ingestRowCount(assessmentID uint) (int64, error) {
	var count int64
	err := env.db.Model(&types.RawData{}).Where("assessment_id = ?", assessmentID).Count(&count).Error
	return count, err
}

func (env *testEnv) count(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	if err := env.db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return count
}
