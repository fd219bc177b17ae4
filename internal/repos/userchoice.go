package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/types"
)

type UserChoiceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, choices []*types.UserChoice) ([]*types.UserChoice, error)
	// GetByUserID returns the user's full swipe log in insertion order.
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserChoice, error)
	CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	FullDeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type userChoiceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserChoiceRepo(db *gorm.DB, baseLog *logger.Logger) UserChoiceRepo {
	return &userChoiceRepo{db: db, log: baseLog.With("repo", "UserChoiceRepo")}
}

func (r *userChoiceRepo) Create(ctx context.Context, tx *gorm.DB, choices []*types.UserChoice) ([]*types.UserChoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(choices) == 0 {
		return []*types.UserChoice{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *userChoiceRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserChoice, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserChoice
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, seq ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *userChoiceRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.UserChoice{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userChoiceRepo) FullDeleteByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Unscoped().
		Where("user_id = ?", userID).
		Delete(&types.UserChoice{}).Error; err != nil {
		return err
	}
	return nil
}
