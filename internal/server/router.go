package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/drjp81/devsecops-assessments/internal/handlers"
)

type RouterConfig struct {
	CompanyHandler    *handlers.CompanyHandler
	TeamHandler       *handlers.TeamHandler
	AssessmentHandler *handlers.AssessmentHandler
	IngestHandler     *handlers.IngestHandler

	// TemplatesGlob and StaticDir are optional so API-only tests can wire a
	// router without the web assets on disk.
	TemplatesGlob string
	StaticDir     string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Templates are loaded once here and read-only afterward.
	if cfg.TemplatesGlob != "" {
		router.LoadHTMLGlob(cfg.TemplatesGlob)
	}
	if cfg.StaticDir != "" {
		router.Static("/static", cfg.StaticDir)
	}

	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/companies")
	})

	// Browser surface
	router.GET("/companies", cfg.CompanyHandler.List)
	router.POST("/companies", cfg.CompanyHandler.Create)
	router.GET("/companies/:id", cfg.CompanyHandler.Detail)
	router.POST("/companies/:id/teams", cfg.TeamHandler.Create)
	router.GET("/teams/:id", cfg.TeamHandler.Detail)
	router.POST("/teams/:id/assessments", cfg.AssessmentHandler.Create)
	router.GET("/assessments/:id", cfg.AssessmentHandler.Detail)
	router.POST("/assessments/:id/metrics", cfg.AssessmentHandler.AddMetric)
	router.POST("/assessments/:id/scores", cfg.AssessmentHandler.AddScore)
	router.POST("/assessments/:id/controls", cfg.AssessmentHandler.AddControl)
	router.POST("/assessments/:id/raw", cfg.AssessmentHandler.AddRawManual)

	// Machine ingestion
	api := router.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Source"},
	}))
	api.POST("/ingest/:guid_token/raw", cfg.IngestHandler.IngestRaw)

	return router
}
