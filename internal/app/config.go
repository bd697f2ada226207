package app

import (
	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/utils"
)

type Config struct {
	HTTPAddr      string
	TemplatesGlob string
	StaticDir     string
}

func LoadConfig(log *logger.Logger) Config {
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)
	templatesGlob := utils.GetEnv("TEMPLATES_GLOB", "web/templates/*.html", log)
	staticDir := utils.GetEnv("STATIC_DIR", "web/static", log)
	return Config{
		HTTPAddr:      httpAddr,
		TemplatesGlob: templatesGlob,
		StaticDir:     staticDir,
	}
}
