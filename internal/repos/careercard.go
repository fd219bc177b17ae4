package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/types"
)

type CareerCardRepo interface {
	Create(ctx context.Context, tx *gorm.DB, cards []*types.CareerCard) ([]*types.CareerCard, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.CareerCard, error)
	GetByDomainNames(ctx context.Context, tx *gorm.DB, domainNames []string) ([]*types.CareerCard, error)
	GetBySourceExcluding(ctx context.Context, tx *gorm.DB, source string, excludeIDs []uuid.UUID, limit int) ([]*types.CareerCard, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type careerCardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerCardRepo(db *gorm.DB, baseLog *logger.Logger) CareerCardRepo {
	return &careerCardRepo{db: db, log: baseLog.With("repo", "CareerCardRepo")}
}

func (r *careerCardRepo) Create(ctx context.Context, tx *gorm.DB, cards []*types.CareerCard) ([]*types.CareerCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(cards) == 0 {
		return []*types.CareerCard{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *careerCardRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.CareerCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CareerCard
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

func (r *careerCardRepo) GetByDomainNames(ctx context.Context, tx *gorm.DB, domainNames []string) ([]*types.CareerCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CareerCard
	if len(domainNames) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("domain IN ?", domainNames).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *careerCardRepo) GetBySourceExcluding(ctx context.Context, tx *gorm.DB, source string, excludeIDs []uuid.UUID, limit int) ([]*types.CareerCard, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	q := transaction.WithContext(ctx).
		Where("source = ?", source).
		Order("created_at ASC")
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var results []*types.CareerCard
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *careerCardRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CareerCard{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
