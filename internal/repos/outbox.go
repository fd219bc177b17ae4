package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/types"
)

type OutboxRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entries []*types.OutboxEntry) ([]*types.OutboxEntry, error)
	// ClaimNextRunnable picks the oldest pending (or retryable failed) entry,
	// flips it to sending and returns it. Claiming uses SKIP LOCKED so
	// concurrent workers never grab the same entry. Returns nil when the
	// queue is drained.
	ClaimNextRunnable(ctx context.Context, tx *gorm.DB, maxAttempts int) (*types.OutboxEntry, error)
	MarkSent(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx *gorm.DB, id uuid.UUID, attemptErr error, nextAttemptAt time.Time) error
	CountPendingByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type outboxRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOutboxRepo(db *gorm.DB, baseLog *logger.Logger) OutboxRepo {
	return &outboxRepo{db: db, log: baseLog.With("repo", "OutboxRepo")}
}

func (r *outboxRepo) Create(ctx context.Context, tx *gorm.DB, entries []*types.OutboxEntry) ([]*types.OutboxEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(entries) == 0 {
		return []*types.OutboxEntry{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *outboxRepo) ClaimNextRunnable(ctx context.Context, tx *gorm.DB, maxAttempts int) (*types.OutboxEntry, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	now := time.Now()
	var claimed *types.OutboxEntry
	err := transaction.WithContext(ctx).Transaction(func(txx *gorm.DB) error {
		var entry types.OutboxEntry
		q := txx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where(`
        (
          status = ?
          OR (
            status = ?
            AND attempts < ?
          )
        )
        AND (next_attempt_at IS NULL OR next_attempt_at <= ?)
      `, types.OutboxStatusPending, types.OutboxStatusFailed, maxAttempts, now).
			Order("created_at ASC")
		if err := q.First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		updates := map[string]interface{}{
			"status":     types.OutboxStatusSending,
			"attempts":   entry.Attempts + 1,
			"updated_at": now,
		}
		if err := txx.Model(&types.OutboxEntry{}).
			Where("id = ?", entry.ID).
			Updates(updates).Error; err != nil {
			return err
		}
		entry.Status = types.OutboxStatusSending
		entry.Attempts++
		claimed = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *outboxRepo) MarkSent(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.OutboxEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     types.OutboxStatusSent,
			"last_error": "",
			"updated_at": time.Now(),
		}).Error
}

func (r *outboxRepo) MarkFailed(ctx context.Context, tx *gorm.DB, id uuid.UUID, attemptErr error, nextAttemptAt time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil
	}

	msg := ""
	if attemptErr != nil {
		msg = attemptErr.Error()
	}

	return transaction.WithContext(ctx).
		Model(&types.OutboxEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          types.OutboxStatusFailed,
			"last_error":      msg,
			"next_attempt_at": nextAttemptAt,
			"updated_at":      time.Now(),
		}).Error
}

func (r *outboxRepo) CountPendingByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil {
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.OutboxEntry{}).
		Where("user_id = ? AND status IN ?", userID, []string{types.OutboxStatusPending, types.OutboxStatusFailed, types.OutboxStatusSending}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
