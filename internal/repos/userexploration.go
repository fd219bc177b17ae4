package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/types"
)

type UserExplorationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, explorations []*types.UserExploration) ([]*types.UserExploration, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserExploration, error)
	GetByUserAndDomainID(ctx context.Context, tx *gorm.DB, userID, domainID uuid.UUID) ([]*types.UserExploration, error)
}

type userExplorationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserExplorationRepo(db *gorm.DB, baseLog *logger.Logger) UserExplorationRepo {
	return &userExplorationRepo{db: db, log: baseLog.With("repo", "UserExplorationRepo")}
}

func (r *userExplorationRepo) Create(ctx context.Context, tx *gorm.DB, explorations []*types.UserExploration) ([]*types.UserExploration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(explorations) == 0 {
		return []*types.UserExploration{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&explorations).Error; err != nil {
		return nil, err
	}
	return explorations, nil
}

func (r *userExplorationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserExploration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserExploration
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *userExplorationRepo) GetByUserAndDomainID(ctx context.Context, tx *gorm.DB, userID, domainID uuid.UUID) ([]*types.UserExploration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserExploration
	if userID == uuid.Nil || domainID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND domain_id = ?", userID, domainID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
