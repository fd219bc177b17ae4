package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

// SummarizeProfile folds a user's swipe log into an InterestProfile. The
// summary is derived on demand and never stored; the choice log stays the
// single source of truth.
//
// Top categories rank domains by interested count; ties keep the order the
// domains were first encountered in the log. Average growth and the leading
// difficulty only look at interested cards, since those are the careers the
// user actually wants.
func SummarizeProfile(choices []*types.UserChoice, cards map[uuid.UUID]*types.CareerCard) types.InterestProfile {
	profile := types.InterestProfile{
		TopCategories: []string{},
		Insights:      []string{},
	}

	type domainAgg struct {
		name       string
		interested int
		firstSeen  int
	}
	domainOrder := map[string]*domainAgg{}
	var domainList []*domainAgg

	growthSum := 0
	difficultyCounts := map[types.Difficulty]int{}

	for i, choice := range choices {
		switch choice.Choice {
		case types.ChoiceInterested:
			profile.InterestedCount++
		case types.ChoiceMaybe:
			profile.MaybeCount++
		case types.ChoiceNotInterested:
			profile.NotInterestedCount++
		}

		card, ok := cards[choice.CareerCardID]
		if !ok {
			continue
		}

		agg, seen := domainOrder[card.DomainName]
		if !seen {
			agg = &domainAgg{name: card.DomainName, firstSeen: i}
			domainOrder[card.DomainName] = agg
			domainList = append(domainList, agg)
		}

		if choice.Choice == types.ChoiceInterested {
			agg.interested++
			growthSum += card.Growth
			difficultyCounts[card.Difficulty]++
		}
	}

	sort.SliceStable(domainList, func(a, b int) bool {
		return domainList[a].interested > domainList[b].interested
	})
	for _, agg := range domainList {
		if agg.interested == 0 {
			continue
		}
		profile.TopCategories = append(profile.TopCategories, agg.name)
		if len(profile.TopCategories) == 3 {
			break
		}
	}

	if profile.InterestedCount > 0 {
		profile.AverageGrowth = int(math.Round(float64(growthSum) / float64(profile.InterestedCount)))
	}

	profile.TopDifficulty = leadingDifficulty(difficultyCounts)
	profile.Insights = buildInsights(profile)
	return profile
}

// leadingDifficulty picks the most common difficulty among interested cards,
// breaking ties alphabetically so the result is stable across runs.
func leadingDifficulty(counts map[types.Difficulty]int) types.Difficulty {
	var best types.Difficulty
	bestCount := 0
	for _, d := range []types.Difficulty{types.DifficultyAdvanced, types.DifficultyBeginner, types.DifficultyIntermediate} {
		if c := counts[d]; c > bestCount {
			best = d
			bestCount = c
		}
	}
	return best
}

func buildInsights(p types.InterestProfile) []string {
	insights := []string{}
	if p.InterestedCount == 0 {
		insights = append(insights, "Keep swiping to discover careers that excite you.")
		return insights
	}
	if len(p.TopCategories) > 0 {
		insights = append(insights, fmt.Sprintf("You're most drawn to %s careers.", p.TopCategories[0]))
	}
	if p.AverageGrowth >= 20 {
		insights = append(insights, fmt.Sprintf("The careers you like are growing fast, around %d%% projected growth.", p.AverageGrowth))
	}
	if p.TopDifficulty != "" {
		insights = append(insights, fmt.Sprintf("Most of your picks are %s-level paths.", p.TopDifficulty))
	}
	if p.NotInterestedCount > p.InterestedCount {
		insights = append(insights, "You're still narrowing things down. Keep exploring different domains.")
	}
	return insights
}

type ProfileService interface {
	Summarize(ctx context.Context, userID uuid.UUID) (*types.InterestProfile, error)
	// UpdateInterests replaces the caller's declared interests, the list the
	// aggregator matches domain names against.
	UpdateInterests(ctx context.Context, userID uuid.UUID, interests []string) error
}

type profileService struct {
	db         *gorm.DB
	log        *logger.Logger
	choiceRepo repos.UserChoiceRepo
	cardRepo   repos.CareerCardRepo
	userRepo   repos.UserRepo
	interests  InterestService
}

func NewProfileService(
	db *gorm.DB,
	log *logger.Logger,
	choiceRepo repos.UserChoiceRepo,
	cardRepo repos.CareerCardRepo,
	userRepo repos.UserRepo,
	interests InterestService,
) ProfileService {
	return &profileService{
		db:         db,
		log:        log.With("service", "ProfileService"),
		choiceRepo: choiceRepo,
		cardRepo:   cardRepo,
		userRepo:   userRepo,
		interests:  interests,
	}
}

func (s *profileService) UpdateInterests(ctx context.Context, userID uuid.UUID, interests []string) error {
	cleaned := make([]string, 0, len(interests))
	for _, it := range interests {
		if it = strings.TrimSpace(it); it != "" {
			cleaned = append(cleaned, it)
		}
	}
	raw, err := json.Marshal(cleaned)
	if err != nil {
		return fmt.Errorf("error encoding interests: %w", err)
	}
	if err := s.userRepo.UpdateInterests(ctx, nil, userID, raw); err != nil {
		return fmt.Errorf("error updating interests: %w", err)
	}
	s.interests.InvalidateProjections(ctx, userID)
	return nil
}

func (s *profileService) Summarize(ctx context.Context, userID uuid.UUID) (*types.InterestProfile, error) {
	choices, err := s.choiceRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching choices: %w", err)
	}

	cardIDs := make([]uuid.UUID, 0, len(choices))
	for _, c := range choices {
		cardIDs = append(cardIDs, c.CareerCardID)
	}
	cards, err := s.cardRepo.GetByIDs(ctx, nil, cardIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching cards: %w", err)
	}
	cardsByID := make(map[uuid.UUID]*types.CareerCard, len(cards))
	for _, card := range cards {
		cardsByID[card.ID] = card
	}

	profile := SummarizeProfile(choices, cardsByID)
	return &profile, nil
}
