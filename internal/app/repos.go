package app

import (
	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/repos"
)

type Repos struct {
	Company         repos.CompanyRepo
	Team            repos.TeamRepo
	Assessment      repos.AssessmentRepo
	RawData         repos.RawDataRepo
	Metric          repos.MetricRepo
	MaturityModel   repos.MaturityModelRepo
	Practice        repos.PracticeRepo
	Score           repos.ScoreRepo
	ControlEvidence repos.ControlEvidenceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Company:         repos.NewCompanyRepo(db, log),
		Team:            repos.NewTeamRepo(db, log),
		Assessment:      repos.NewAssessmentRepo(db, log),
		RawData:         repos.NewRawDataRepo(db, log),
		Metric:          repos.NewMetricRepo(db, log),
		MaturityModel:   repos.NewMaturityModelRepo(db, log),
		Practice:        repos.NewPracticeRepo(db, log),
		Score:           repos.NewScoreRepo(db, log),
		ControlEvidence: repos.NewControlEvidenceRepo(db, log),
	}
}
