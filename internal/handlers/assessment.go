package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/drjp81/devsecops-assessments/internal/services"
)

type AssessmentHandler struct {
	assessmentService services.AssessmentService
	scoreService      services.ScoreService
}

func NewAssessmentHandler(assessmentService services.AssessmentService, scoreService services.ScoreService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		scoreService:      scoreService,
	}
}

func (ah *AssessmentHandler) Create(c *gin.Context) {
	teamID, ok := paramID(c, "id")
	if !ok {
		return
	}
	assessment, err := ah.assessmentService.Create(c.Request.Context(), teamID, services.CreateAssessmentInput{
		Name:           c.PostForm("name"),
		AssessmentDate: c.PostForm("assessment_date"),
		Notes:          c.PostForm("notes"),
	})
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/assessments/%d", assessment.ID))
}

func (ah *AssessmentHandler) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	detail, err := ah.assessmentService.GetDetail(c.Request.Context(), id)
	if err != nil {
		abortHTML(c, err)
		return
	}
	c.HTML(http.StatusOK, "assessment_detail.html", gin.H{
		"Assessment": detail.Assessment,
		"Team":       detail.Team,
		"Company":    detail.Company,
		"Raw":        detail.Raw,
		"Metrics":    detail.Metrics,
		"Scores":     detail.Scores,
		"Controls":   detail.Controls,
		"IngestURL":  detail.IngestURL,
	})
}

func (ah *AssessmentHandler) AddMetric(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	value, err := strconv.ParseFloat(c.PostForm("metric_value"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "metric_value must be a number")
		return
	}
	if _, err := ah.assessmentService.AddMetric(c.Request.Context(), id, services.AddMetricInput{
		MetricName:  c.PostForm("metric_name"),
		MetricValue: value,
		Unit:        c.PostForm("unit"),
	}); err != nil {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/assessments/%d", id))
}

func (ah *AssessmentHandler) AddScore(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	level, err := strconv.Atoi(c.PostForm("level"))
	if err != nil {
		c.String(http.StatusBadRequest, "level must be an integer")
		return
	}
	if _, err := ah.scoreService.Attach(c.Request.Context(), id, services.AttachScoreInput{
		ModelName:    c.PostForm("model_name"),
		Code:         c.PostForm("code"),
		PracticeName: c.PostForm("practice_name"),
		Level:        level,
		EvidenceURI:  c.PostForm("evidence_uri"),
		Notes:        c.PostForm("notes"),
	}); err != nil {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/assessments/%d", id))
}

func (ah *AssessmentHandler) AddControl(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := ah.assessmentService.AddControl(c.Request.Context(), id, services.AddControlInput{
		Domain:      c.PostForm("domain"),
		Control:     c.PostForm("control"),
		Standard:    c.PostForm("standard"),
		Level:       c.PostForm("level"),
		EvidenceURI: c.PostForm("evidence_uri"),
	}); err != nil {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/assessments/%d", id))
}

func (ah *AssessmentHandler) AddRawManual(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := ah.assessmentService.AddRawManual(c.Request.Context(), id, c.PostForm("source"), c.PostForm("payload_text")); err != nil {
		abortHTML(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/assessments/%d", id))
}
