package app

import (
	"github.com/gin-gonic/gin"

	"github.com/drjp81/devsecops-assessments/internal/server"
)

func wireRouter(handlerset Handlers, cfg Config) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		CompanyHandler:    handlerset.Company,
		TeamHandler:       handlerset.Team,
		AssessmentHandler: handlerset.Assessment,
		IngestHandler:     handlerset.Ingest,
		TemplatesGlob:     cfg.TemplatesGlob,
		StaticDir:         cfg.StaticDir,
	})
}
