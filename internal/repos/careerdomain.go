package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/types"
)

type CareerDomainRepo interface {
	Create(ctx context.Context, tx *gorm.DB, domains []*types.CareerDomain) ([]*types.CareerDomain, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CareerDomain, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.CareerDomain, error)
	GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.CareerDomain, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type careerDomainRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerDomainRepo(db *gorm.DB, baseLog *logger.Logger) CareerDomainRepo {
	return &careerDomainRepo{db: db, log: baseLog.With("repo", "CareerDomainRepo")}
}

func (r *careerDomainRepo) Create(ctx context.Context, tx *gorm.DB, domains []*types.CareerDomain) ([]*types.CareerDomain, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(domains) == 0 {
		return []*types.CareerDomain{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&domains).Error; err != nil {
		return nil, err
	}
	return domains, nil
}

func (r *careerDomainRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.CareerDomain, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CareerDomain
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *careerDomainRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.CareerDomain, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CareerDomain
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *careerDomainRepo) GetByNames(ctx context.Context, tx *gorm.DB, names []string) ([]*types.CareerDomain, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CareerDomain
	if len(names) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("name IN ?", names).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *careerDomainRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CareerDomain{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
