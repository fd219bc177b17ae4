package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/clients/cardgen"
	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

const defaultCardBatchSize = 10

// CardGenerator is the slice of the generator client the supply needs.
type CardGenerator interface {
	GenerateCards(ctx context.Context, domain string, profile cardgen.UserProfile, count int) ([]cardgen.GeneratedCard, error)
}

type CardSupplyService interface {
	// FetchBatch returns a fresh shuffled deck. Generated cards are persisted
	// before they are returned so later choices always resolve to a card row.
	FetchBatch(ctx context.Context, userID uuid.UUID, domain string, count int) ([]*types.CareerCard, error)
	// FetchMore extends a session deck, excluding cards the user already has.
	// Results keep arrival order; the client appends them under the current deck.
	FetchMore(ctx context.Context, userID uuid.UUID, domain string, existingIDs []uuid.UUID, count int) ([]*types.CareerCard, error)
	Seed(ctx context.Context, cards []*types.CareerCard) error
}

type cardSupplyService struct {
	db        *gorm.DB
	log       *logger.Logger
	cardRepo  repos.CareerCardRepo
	userRepo  repos.UserRepo
	generator CardGenerator
}

// NewCardSupplyService wires the card supply. A nil generator switches the
// supply to the seeded deck, which keeps local and degraded environments usable.
func NewCardSupplyService(db *gorm.DB, log *logger.Logger, cardRepo repos.CareerCardRepo, userRepo repos.UserRepo, generator CardGenerator) CardSupplyService {
	return &cardSupplyService{
		db:        db,
		log:       log.With("service", "CardSupplyService"),
		cardRepo:  cardRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

func (s *cardSupplyService) FetchBatch(ctx context.Context, userID uuid.UUID, domain string, count int) ([]*types.CareerCard, error) {
	if count <= 0 {
		count = defaultCardBatchSize
	}

	cards, err := s.supply(ctx, userID, domain, nil, count)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards, nil
}

func (s *cardSupplyService) FetchMore(ctx context.Context, userID uuid.UUID, domain string, existingIDs []uuid.UUID, count int) ([]*types.CareerCard, error) {
	if count <= 0 {
		count = defaultCardBatchSize
	}
	return s.supply(ctx, userID, domain, existingIDs, count)
}

func (s *cardSupplyService) supply(ctx context.Context, userID uuid.UUID, domain string, excludeIDs []uuid.UUID, count int) ([]*types.CareerCard, error) {
	if s.generator == nil {
		return s.seedDeck(ctx, excludeIDs, count)
	}

	profile := s.loadProfile(ctx, userID)
	generated, err := s.generator.GenerateCards(ctx, domain, profile, count)
	if err != nil {
		// generator failure is surfaced, not papered over with seeds: the
		// client shows its own retry state for an empty deck
		return nil, fmt.Errorf("error generating cards: %w", err)
	}

	cards := make([]*types.CareerCard, 0, len(generated))
	for _, g := range generated {
		difficulty, err := types.ParseDifficulty(g.Difficulty)
		if err != nil {
			difficulty = types.DifficultyIntermediate
		}
		card := &types.CareerCard{
			Title:           g.Title,
			DomainName:      g.Domain,
			Description:     g.Description,
			CoreSkills:      mustJSON(g.CoreSkills),
			SkillCategories: mustJSON(g.SkillCategories),
			Difficulty:      difficulty,
			Growth:          g.Growth,
			Source:          "generator",
		}
		if g.Domain == "" {
			card.DomainName = domain
		}
		if len(g.Details) > 0 {
			if raw, err := json.Marshal(g.Details); err == nil {
				card.Details = datatypes.JSON(raw)
			}
		}
		cards = append(cards, card)
	}

	if _, err := s.cardRepo.Create(ctx, nil, cards); err != nil {
		return nil, fmt.Errorf("error persisting cards: %w", err)
	}
	return cards, nil
}

// Seed inserts the starter deck once; reruns on a populated table are no-ops.
func (s *cardSupplyService) Seed(ctx context.Context, cards []*types.CareerCard) error {
	count, err := s.cardRepo.CountAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("error counting cards: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := s.cardRepo.Create(ctx, nil, cards); err != nil {
		return fmt.Errorf("error seeding cards: %w", err)
	}
	s.log.Info("Seeded starter card deck", "count", len(cards))
	return nil
}

func (s *cardSupplyService) seedDeck(ctx context.Context, excludeIDs []uuid.UUID, count int) ([]*types.CareerCard, error) {
	cards, err := s.cardRepo.GetBySourceExcluding(ctx, nil, "seed", excludeIDs, count)
	if err != nil {
		return nil, fmt.Errorf("error fetching seed deck: %w", err)
	}
	return cards, nil
}

func (s *cardSupplyService) loadProfile(ctx context.Context, userID uuid.UUID) cardgen.UserProfile {
	var profile cardgen.UserProfile
	if userID == uuid.Nil {
		return profile
	}
	users, err := s.userRepo.GetByIDs(ctx, nil, []uuid.UUID{userID})
	if err != nil || len(users) == 0 || users[0] == nil {
		return profile
	}
	profile.FirstName = users[0].FirstName
	if len(users[0].Interests) > 0 {
		_ = json.Unmarshal(users[0].Interests, &profile.Interests)
	}
	return profile
}
