package repos

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(
		&types.Company{},
		&types.Team{},
		&types.Assessment{},
		&types.RawData{},
		&types.Metric{},
		&types.MaturityModel{},
		&types.Practice{},
		&types.Score{},
		&types.ControlEvidence{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return gdb
}

func testLog() *logger.Logger {
	return logger.NewNop()
}

func seedTeam(t *testing.T, gdb *gorm.DB) *types.Team {
	t.Helper()
	company := &types.Company{Name: "Acme " + uuid.NewString()}
	if err := gdb.Create(company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	team := &types.Team{CompanyID: company.ID, Name: "Platform"}
	if err := gdb.Create(team).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}
	return team
}

func seedAssessment(t *testing.T, gdb *gorm.DB, teamID uint) *types.Assessment {
	t.Helper()
	assessment := &types.Assessment{
		TeamID:    teamID,
		Name:      "Q1 review",
		GuidToken: uuid.NewString(),
	}
	if err := gdb.Create(assessment).Error; err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	return assessment
}
