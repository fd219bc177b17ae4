package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

type ActivityService interface {
	// Track stores the event locally and queues a best-effort push to the
	// profile sync API.
	Track(ctx context.Context, userID uuid.UUID, activityType string, data map[string]any) (*types.UserActivity, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*types.UserActivity, error)
}

type activityService struct {
	db           *gorm.DB
	log          *logger.Logger
	activityRepo repos.UserActivityRepo
	outboxRepo   repos.OutboxRepo
}

func NewActivityService(db *gorm.DB, log *logger.Logger, activityRepo repos.UserActivityRepo, outboxRepo repos.OutboxRepo) ActivityService {
	return &activityService{
		db:           db,
		log:          log.With("service", "ActivityService"),
		activityRepo: activityRepo,
		outboxRepo:   outboxRepo,
	}
}

func (s *activityService) Track(ctx context.Context, userID uuid.UUID, activityType string, data map[string]any) (*types.UserActivity, error) {
	if data == nil {
		data = map[string]any{}
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error encoding activity data: %w", err)
	}

	var recorded *types.UserActivity
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := s.activityRepo.Create(ctx, tx, []*types.UserActivity{{
			UserID: userID,
			Type:   activityType,
			Data:   datatypes.JSON(dataJSON),
		}})
		if err != nil {
			return fmt.Errorf("error recording activity: %w", err)
		}
		recorded = created[0]

		payload, err := json.Marshal(map[string]any{
			"type": activityType,
			"data": data,
			"at":   recorded.CreatedAt,
		})
		if err != nil {
			return nil
		}
		if _, err := s.outboxRepo.Create(ctx, tx, []*types.OutboxEntry{{
			UserID:  userID,
			Kind:    types.OutboxKindActivity,
			Payload: datatypes.JSON(payload),
		}}); err != nil {
			s.log.Warn("Failed to enqueue activity sync", "userID", userID, "error", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return recorded, nil
}

func (s *activityService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*types.UserActivity, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.activityRepo.GetByUserID(ctx, nil, userID, limit)
}
