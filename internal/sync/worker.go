package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

// Pusher is the slice of the profile sync client the worker dispatches to.
type Pusher interface {
	SaveUserChoice(ctx context.Context, userID string, payload json.RawMessage) error
	ClearUserChoices(ctx context.Context, userID string) error
	TrackActivity(ctx context.Context, userID string, payload json.RawMessage) error
}

// Worker drains the outbox into the remote profile service. Each loop claims
// one entry at a time under SKIP LOCKED, so any number of replicas can run
// the same pool without double-sending.
type Worker struct {
	db     *gorm.DB
	log    *logger.Logger
	outbox repos.OutboxRepo
	pusher Pusher
}

func NewWorker(db *gorm.DB, baseLog *logger.Logger, outbox repos.OutboxRepo, pusher Pusher) *Worker {
	return &Worker{
		db:     db,
		log:    baseLog.With("component", "SyncWorker"),
		outbox: outbox,
		pusher: pusher,
	}
}

func (w *Worker) Start(ctx context.Context) {
	if w.pusher == nil {
		w.log.Warn("Profile sync not configured; outbox worker idle")
		return
	}

	concurrency := getEnvInt("SYNC_WORKER_CONCURRENCY", 2)
	if concurrency < 1 {
		concurrency = 1
	}
	w.log.Info("Starting sync worker pool", "concurrency", concurrency)

	for i := 0; i < concurrency; i++ {
		workerID := i + 1
		go w.runLoop(ctx, workerID)
	}
}

func (w *Worker) runLoop(ctx context.Context, workerID int) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	const maxAttempts = 5

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Sync worker loop stopped", "worker_id", workerID)
			return
		case <-ticker.C:
			entry, err := w.outbox.ClaimNextRunnable(ctx, nil, maxAttempts)
			if err != nil {
				w.log.Warn("ClaimNextRunnable failed", "worker_id", workerID, "error", err)
				continue
			}
			if entry == nil {
				continue
			}

			if err := w.dispatch(ctx, entry); err != nil {
				backoff := retryBackoff(entry.Attempts)
				w.log.Warn("Sync push failed",
					"worker_id", workerID,
					"entry_id", entry.ID,
					"kind", entry.Kind,
					"attempts", entry.Attempts,
					"retry_in", backoff,
					"error", err,
				)
				if markErr := w.outbox.MarkFailed(ctx, nil, entry.ID, err, time.Now().Add(backoff)); markErr != nil {
					w.log.Error("MarkFailed failed", "entry_id", entry.ID, "error", markErr)
				}
				continue
			}

			if err := w.outbox.MarkSent(ctx, nil, entry.ID); err != nil {
				w.log.Error("MarkSent failed", "entry_id", entry.ID, "error", err)
			}
		}
	}
}

func (w *Worker) dispatch(ctx context.Context, entry *types.OutboxEntry) error {
	userID := entry.UserID.String()
	payload := json.RawMessage(entry.Payload)

	switch entry.Kind {
	case types.OutboxKindChoiceSave:
		return w.pusher.SaveUserChoice(ctx, userID, payload)
	case types.OutboxKindChoicesClear:
		return w.pusher.ClearUserChoices(ctx, userID)
	case types.OutboxKindActivity:
		return w.pusher.TrackActivity(ctx, userID, payload)
	default:
		return fmt.Errorf("unknown outbox kind %q", entry.Kind)
	}
}

// retryBackoff doubles per attempt: 30s, 1m, 2m, 4m, capped at 10m.
func retryBackoff(attempts int) time.Duration {
	backoff := 30 * time.Second
	for i := 1; i < attempts; i++ {
		backoff *= 2
		if backoff >= 10*time.Minute {
			return 10 * time.Minute
		}
	}
	return backoff
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
