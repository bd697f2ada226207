package app

import (
	"github.com/drjp81/devsecops-assessments/internal/handlers"
	"github.com/drjp81/devsecops-assessments/internal/logger"
)

type Handlers struct {
	Company    *handlers.CompanyHandler
	Team       *handlers.TeamHandler
	Assessment *handlers.AssessmentHandler
	Ingest     *handlers.IngestHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Company:    handlers.NewCompanyHandler(serviceset.Company),
		Team:       handlers.NewTeamHandler(serviceset.Team),
		Assessment: handlers.NewAssessmentHandler(serviceset.Assessment, serviceset.Score),
		Ingest:     handlers.NewIngestHandler(serviceset.Ingest),
	}
}
