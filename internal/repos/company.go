package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drjp81/devsecops-assessments/internal/logger"
	"github.com/drjp81/devsecops-assessments/internal/types"
)

type CompanyRepo interface {
	Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Company, error)
	ListByName(ctx context.Context, tx *gorm.DB) ([]*types.Company, error)
}

type companyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCompanyRepo(db *gorm.DB, baseLog *logger.Logger) CompanyRepo {
	repoLog := baseLog.With("repo", "CompanyRepo")
	return &companyRepo{db: db, log: repoLog}
}

func (cr *companyRepo) Create(ctx context.Context, tx *gorm.DB, company *types.Company) (*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID returns (nil, nil) when no row matches. Callers translate the
// absent result into a not-found response.
func (cr *companyRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.Company
	if err := transaction.WithContext(ctx).First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (cr *companyRepo) ListByName(ctx context.Context, tx *gorm.DB) ([]*types.Company, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []*types.Company
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
