package app

import (
	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/services"
)

type Services struct {
	Company    services.CompanyService
	Team       services.TeamService
	Assessment services.AssessmentService
	Score      services.ScoreService
	Ingest     services.IngestService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Company: services.NewCompanyService(db, log, reposet.Company, reposet.Team),
		Team:    services.NewTeamService(db, log, reposet.Company, reposet.Team, reposet.Assessment),
		Assessment: services.NewAssessmentService(
			db, log,
			reposet.Company,
			reposet.Team,
			reposet.Assessment,
			reposet.RawData,
			reposet.Metric,
			reposet.Score,
			reposet.ControlEvidence,
		),
		Score:  services.NewScoreService(db, log, reposet.Assessment, reposet.MaturityModel, reposet.Practice, reposet.Score),
		Ingest: services.NewIngestService(db, log, reposet.Assessment, reposet.RawData),
	}
}
