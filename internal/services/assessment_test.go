package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/drjp81/devsecops-assessments/internal/platform/apierr"
)

func TestAssessmentTokensUniqueAndWellFormed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.company.Create(ctx, CreateCompanyInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	team, err := env.team.Create(ctx, company.ID, CreateTeamInput{Name: "Platform"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	seen := make(map[string]struct{})
	for i := 0; i < 120; i++ {
		assessment, err := env.assessment.Create(ctx, team.ID, CreateAssessmentInput{Name: "trial"})
		if err != nil {
			t.Fatalf("create assessment %d: %v", i, err)
		}
		token := assessment.GuidToken
		if len(token) != 36 {
			t.Fatalf("token %q is not 36 chars", token)
		}
		if _, err := uuid.Parse(token); err != nil {
			t.Fatalf("token %q is not a valid uuid: %v", token, err)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("token collision after %d assessments: %q", i, token)
		}
		seen[token] = struct{}{}
	}
}

func TestAssessmentCreateUnknownTeamReturnsNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.assessment.Create(context.Background(), 4242, CreateAssessmentInput{Name: "Q1"})
	if err == nil {
		t.Fatalf("expected error for missing team")
	}
	if status := apierr.StatusOf(err); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestAssessmentCreateBadDateCollapsesToAbsent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company, err := env.company.Create(ctx, CreateCompanyInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}
	team, err := env.team.Create(ctx, company.ID, CreateTeamInput{Name: "Platform"})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	assessment, err := env.assessment.Create(ctx, team.ID, CreateAssessmentInput{
		Name:           "Q1",
		AssessmentDate: "not-a-date",
	})
	if err != nil {
		t.Fatalf("create assessment: %v", err)
	}
	if assessment.AssessmentDate != nil {
		t.Fatalf("expected absent date, got %v", assessment.AssessmentDate)
	}
}

func TestAddRawManualRejectsInvalidJSON(t *testing.T) {
	env := newTestEnv(t)
	assessment := env.seedAssessment(t)

	_, err := env.assessment.AddRawManual(context.Background(), assessment.ID, "", "{not json")
	if err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
	if status := apierr.StatusOf(err); status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	count, err := env.ingestRowCount(assessment.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero stored rows, got %d", count)
	}
}

func TestAssessmentDetailIncludesIngestURL(t *testing.T) {
	env := newTestEnv(t)
	assessment := env.seedAssessment(t)

	detail, err := env.assessment.GetDetail(context.Background(), assessment.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	want := "/api/ingest/" + assessment.GuidToken + "/raw"
	if detail.IngestURL != want {
		t.Fatalf("ingest url: want %q got %q", want, detail.IngestURL)
	}
}
