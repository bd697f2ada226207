package handlers_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/drjp81/devsecops-assessments/internal/handlers"
	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/repos"
	"github.com/drjp81/devsecops-assessments/internal/server"
	"github.com/drjp81/devsecops-assessments/internal/services"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	company    services.CompanyService
	team       services.TeamService
	assessment services.AssessmentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	companyService := services.NewCompanyService(gdb, log, companyRepo, teamRepo)
	teamService := services.NewTeamService(gdb, log, companyRepo, teamRepo, assessmentRepo)
	assessmentService := services.NewAssessmentService(
		gdb, log,
		companyRepo, teamRepo, assessmentRepo,
		rawDataRepo, metricRepo, scoreRepo, controlRepo,
	)
	scoreService := services.NewScoreService(gdb, log, assessmentRepo, modelRepo, practiceRepo, scoreRepo)
	ingestService := services.NewIngestService(gdb, log, assessmentRepo, rawDataRepo)

	router := server.NewRouter(server.RouterConfig{
		CompanyHandler:    handlers.NewCompanyHandler(companyService),
		TeamHandler:       handlers.NewTeamHandler(teamService),
		AssessmentHandler: handlers.NewAssessmentHandler(assessmentService, scoreService),
		IngestHandler:     handlers.NewIngestHandler(ingestService),
		TemplatesGlob:     "../../web/templates/*.html",
	})

	return &testEnv{
		router:     router,
		db:         gdb,
		company:    companyService,
		team:       teamService,
		assessment: assessmentService,
	}
}

func (env *testEnv) seedAssessment(t *testing.T) *types.Assessment {
	t.Helper()
	ctx := context.Background()
	company, err := env.company.Create(ctx, services.CreateCompanyInput{Name: "Acme " + uuid.NewString()})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	team, err := env.team.Create(ctx, company.ID, services.CreateTeamInput{Name: "Platform"})
	if err != nil {
		t.Fatalf("seed team: %v", err)
	}
	assessment, err := env.assessment.Create(ctx, team.ID, services.CreateAssessmentInput{Name: "Q1 review"})
	if err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	return assessment
}

func (env *testEnv) rawRowCount(t *testing.T, assessmentID uint) int64 {
	t.Helper()
	var count int64
	if err := env.db.Model(&types.RawData{}).Where("assessment_id = ?", assessmentID).Count(&count).Error; err != nil {
		t.Fatalf("count raw rows: %v", err)
	}
	return count
}
