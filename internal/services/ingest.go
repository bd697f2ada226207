package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
	"github.com/drjp81/devsecops-assessments/internal/repos"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type IngestAck struct {
	Status       string `json:"status"`
	AssessmentID uint   `json:"assessment_id"`
	RawID        uint   `json:"raw_id"`
}

// IngestService accepts machine-pushed JSON for an assessment identified by
// its guid token. The token is an opaque bearer credential: no expiry, no
// scope narrowing, no rotation.
type IngestService interface {
	IngestRaw(ctx context.Context, guidToken string, body []byte, source string) (*IngestAck, error)
}

type ingestService struct {
	db             *gorm.DB
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
	rawDataRepo    repos.RawDataRepo
}

func NewIngestService(db *gorm.DB, log *logger.Logger, assessmentRepo repos.AssessmentRepo, rawDataRepo repos.RawDataRepo) IngestService {
	serviceLog := log.With("service", "IngestService")
	return &ingestService{
		db:             db,
		log:            serviceLog,
		assessmentRepo: assessmentRepo,
		rawDataRepo:    rawDataRepo,
	}
}

func (is *ingestService) IngestRaw(ctx context.Context, guidToken string, body []byte, source string) (*IngestAck, error) {
	assessment, err := is.assessmentRepo.GetByToken(ctx, nil, guidToken)
	if err != nil {
		return nil, fmt.Errorf("lookup token: %w", err)
	}
	if assessment == nil {
		return nil, apierr.NotFound("token_not_found", fmt.Errorf("assessment token not found"))
	}

	// Any syntactically valid JSON value is accepted; no schema is enforced.
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, apierr.BadRequest("invalid_json", fmt.Errorf("invalid JSON body: %v", err))
	}
	payload, err := encodeCanonical(parsed)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	raw := &types.RawData{
		AssessmentID: assessment.ID,
		Source:       optionalField(source),
		Payload:      datatypes.JSON(payload),
		CollectedAt:  time.Now().UTC(),
	}
	created, err := is.rawDataRepo.Create(ctx, nil, raw)
	if err != nil {
		return nil, fmt.Errorf("create raw data: %w", err)
	}
	is.log.Info("Raw data ingested", "assessment_id", assessment.ID, "raw_id", created.ID, "source", source)
	return &IngestAck{Status: "ok", AssessmentID: assessment.ID, RawID: created.ID}, nil
}

// encodeCanonical re-serializes a parsed JSON value keeping non-ASCII
// characters as-is instead of escaping them.
func encodeCanonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
