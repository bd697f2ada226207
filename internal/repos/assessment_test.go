package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/drjp81/devsecops-assessments/internal/types"
)

func TestAssessmentRepoListByTeamDatesDescNullsLast(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewAssessmentRepo(gdb, testLog())
	ctx := context.Background()
	team := seedTeam(t, gdb)

	janFirst := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	junFirst := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, a := range []*types.Assessment{
		{TeamID: team.ID, Name: "A", AssessmentDate: &janFirst, GuidToken: uuid.NewString()},
		{TeamID: team.ID, Name: "B", GuidToken: uuid.NewString()},
		{TeamID: team.ID, Name: "C", AssessmentDate: &junFirst, GuidToken: uuid.NewString()},
	} {
		if _, err := repo.Create(ctx, nil, a); err != nil {
			t.Fatalf("create %q: %v", a.Name, err)
		}
	}

	assessments, err := repo.ListByTeam(ctx, nil, team.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"C", "A", "B"}
	if len(assessments) != len(want) {
		t.Fatalf("expected %d assessments, got %d", len(want), len(assessments))
	}
	for i, assessment := range assessments {
		if assessment.Name != want[i] {
			t.Fatalf("position %d: want %q got %q", i, want[i], assessment.Name)
		}
	}
}

func TestAssessmentRepoGetByTokenMissingReturnsNil(t *testing.T) {
	gdb := openTestDB(t)
	repo := NewAssessmentRepo(gdb, testLog())

	assessment, err := repo.GetByToken(context.Background(), nil, uuid.NewString())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment != nil {
		t.Fatalf("expected nil for unknown token, got %+v", assessment)
	}
}
