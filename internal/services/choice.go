package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/clients/profilesync"
	apperrors "github.com/compasslearn/compass-backend/internal/pkg/errors"
	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

// RemoteChoiceFetcher reads the remote copy of a user's choice log.
type RemoteChoiceFetcher interface {
	GetUserChoices(ctx context.Context, userID string) ([]profilesync.RemoteChoice, error)
}

type ChoiceService interface {
	// Record appends one swipe. The write is local-first: the choice row and
	// its outbox entry commit together, and the remote push happens later in
	// the sync worker. Outbox problems never fail the swipe.
	Record(ctx context.Context, userID, careerCardID uuid.UUID, choice types.Choice) (*types.UserChoice, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.UserChoice, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
	// Clear wipes the swipe log and queues a remote wipe.
	Clear(ctx context.Context, userID uuid.UUID) error
	// Reconcile merges the remote choice log into the local one after an
	// outage. Local rows missing remotely are left for the outbox to push;
	// remote rows missing locally are adopted.
	Reconcile(ctx context.Context, userID uuid.UUID) ([]types.ChoicePair, error)
}

type choiceService struct {
	db         *gorm.DB
	log        *logger.Logger
	choiceRepo repos.UserChoiceRepo
	cardRepo   repos.CareerCardRepo
	outboxRepo repos.OutboxRepo
	interests  InterestService
	remote     RemoteChoiceFetcher
}

// NewChoiceService wires the choice store. remote may be nil; Reconcile then
// returns the local log unchanged.
func NewChoiceService(
	db *gorm.DB,
	log *logger.Logger,
	choiceRepo repos.UserChoiceRepo,
	cardRepo repos.CareerCardRepo,
	outboxRepo repos.OutboxRepo,
	interests InterestService,
	remote RemoteChoiceFetcher,
) ChoiceService {
	return &choiceService{
		db:         db,
		log:        log.With("service", "ChoiceService"),
		choiceRepo: choiceRepo,
		cardRepo:   cardRepo,
		outboxRepo: outboxRepo,
		interests:  interests,
		remote:     remote,
	}
}

func (s *choiceService) Record(ctx context.Context, userID, careerCardID uuid.UUID, choice types.Choice) (*types.UserChoice, error) {
	cards, err := s.cardRepo.GetByIDs(ctx, nil, []uuid.UUID{careerCardID})
	if err != nil {
		return nil, fmt.Errorf("error fetching card: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("career card %s: %w", careerCardID, apperrors.ErrNotFound)
	}

	var recorded *types.UserChoice
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := s.choiceRepo.Create(ctx, tx, []*types.UserChoice{{
			UserID:       userID,
			CareerCardID: careerCardID,
			Choice:       choice,
		}})
		if err != nil {
			return fmt.Errorf("error recording choice: %w", err)
		}
		recorded = created[0]

		payload, err := json.Marshal(map[string]any{
			"career_card_id": careerCardID,
			"choice":         choice,
			"chosen_at":      recorded.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			s.log.Warn("Failed to marshal outbox payload", "userID", userID, "error", err)
			return nil
		}
		if _, err := s.outboxRepo.Create(ctx, tx, []*types.OutboxEntry{{
			UserID:  userID,
			Kind:    types.OutboxKindChoiceSave,
			Payload: datatypes.JSON(payload),
		}}); err != nil {
			// the swipe is already durable in this tx; dropping the sync
			// entry is recoverable via reconciliation
			s.log.Warn("Failed to enqueue choice sync", "userID", userID, "error", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.interests.InvalidateProjections(ctx, userID)
	return recorded, nil
}

func (s *choiceService) List(ctx context.Context, userID uuid.UUID) ([]*types.UserChoice, error) {
	return s.choiceRepo.GetByUserID(ctx, nil, userID)
}

func (s *choiceService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.choiceRepo.CountByUserID(ctx, nil, userID)
}

func (s *choiceService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.choiceRepo.FullDeleteByUserID(ctx, tx, userID); err != nil {
			return fmt.Errorf("error clearing choices: %w", err)
		}
		if _, err := s.outboxRepo.Create(ctx, tx, []*types.OutboxEntry{{
			UserID:  userID,
			Kind:    types.OutboxKindChoicesClear,
			Payload: datatypes.JSON(`{}`),
		}}); err != nil {
			s.log.Warn("Failed to enqueue clear sync", "userID", userID, "error", err)
		}
		return nil
	}); err != nil {
		return err
	}

	s.interests.InvalidateProjections(ctx, userID)
	return nil
}

func (s *choiceService) Reconcile(ctx context.Context, userID uuid.UUID) ([]types.ChoicePair, error) {
	local, err := s.choiceRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching local choices: %w", err)
	}
	localPairs := make([]types.ChoicePair, 0, len(local))
	localByCard := make(map[uuid.UUID]bool, len(local))
	for _, c := range local {
		localPairs = append(localPairs, types.ChoicePair{
			CareerCardID: c.CareerCardID,
			Choice:       c.Choice,
			ChosenAt:     c.CreatedAt,
		})
		localByCard[c.CareerCardID] = true
	}

	if s.remote == nil {
		return localPairs, nil
	}

	remoteRaw, err := s.remote.GetUserChoices(ctx, userID.String())
	if err != nil {
		// remote outage: serve the local log and try again next time
		s.log.Warn("Reconcile skipped, remote unavailable", "userID", userID, "error", err)
		return localPairs, nil
	}

	remotePairs := make([]types.ChoicePair, 0, len(remoteRaw))
	for _, rc := range remoteRaw {
		cardID, err := uuid.Parse(rc.CareerCardID)
		if err != nil {
			continue
		}
		choice, err := types.ParseChoice(rc.Choice)
		if err != nil {
			continue
		}
		remotePairs = append(remotePairs, types.ChoicePair{
			CareerCardID: cardID,
			Choice:       choice,
			ChosenAt:     rc.ChosenAt,
		})
	}

	merged := MergeChoiceSets(localPairs, remotePairs)

	// adopt remote-only rows so the local log is complete again
	var adopted []*types.UserChoice
	for _, pair := range merged {
		if localByCard[pair.CareerCardID] {
			continue
		}
		adopted = append(adopted, &types.UserChoice{
			UserID:       userID,
			CareerCardID: pair.CareerCardID,
			Choice:       pair.Choice,
			CreatedAt:    pair.ChosenAt,
		})
	}
	if len(adopted) > 0 {
		if _, err := s.choiceRepo.Create(ctx, nil, adopted); err != nil {
			return nil, fmt.Errorf("error adopting remote choices: %w", err)
		}
		s.interests.InvalidateProjections(ctx, userID)
	}

	return merged, nil
}

// MergeChoiceSets reconciles a local choice log against the remote copy held
// by the profile sync API. Choices are keyed by card: when both sides saw the
// same card, the later swipe wins, and the remote side wins exact-timestamp
// ties since it may have absorbed writes from other devices. The merged set
// comes back in chronological order.
func MergeChoiceSets(local, remote []types.ChoicePair) []types.ChoicePair {
	merged := make(map[uuid.UUID]types.ChoicePair, len(local)+len(remote))
	for _, c := range local {
		merged[c.CareerCardID] = c
	}
	for _, c := range remote {
		existing, ok := merged[c.CareerCardID]
		if !ok || !c.ChosenAt.Before(existing.ChosenAt) {
			merged[c.CareerCardID] = c
		}
	}

	out := make([]types.ChoicePair, 0, len(merged))
	for _, c := range merged {
		out = append(out, c)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].ChosenAt.Before(out[b].ChosenAt)
	})
	return out
}
