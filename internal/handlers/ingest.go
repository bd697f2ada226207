package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/drjp81/devsecops-assessments/internal/http/response"
	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
	"github.com/drjp81/devsecops-assessments/internal/services"
)

type IngestHandler struct {
	ingestService services.IngestService
}

func NewIngestHandler(ingestService services.IngestService) *IngestHandler {
	return &IngestHandler{ingestService: ingestService}
}

// IngestRaw handles POST /api/ingest/:guid_token/raw. The optional X-Source
// header tags the stored row with the pushing tool's name.
func (ih *IngestHandler) IngestRaw(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.RespondError(c, apierr.StatusOf(err), "read_body", err)
		return
	}
	ack, err := ih.ingestService.IngestRaw(c.Request.Context(), c.Param("guid_token"), body, c.GetHeader("X-Source"))
	if err != nil {
		response.RespondError(c, apierr.StatusOf(err), apierr.CodeOf(err), err)
		return
	}
	response.RespondOK(c, ack)
}
