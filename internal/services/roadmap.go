package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/compasslearn/compass-backend/internal/pkg/errors"
	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/realtime"
	"github.com/compasslearn/compass-backend/internal/realtime/bus"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

// MinChoicesForRoadmap is the smallest swipe log a roadmap can be built from.
const MinChoicesForRoadmap = 5

const (
	roadmapEstimatedCompletion = "12-18 weeks"
	roadmapConfidence          = 85
	phaseDuration              = "4-6 weeks"
)

// RoadmapInputs is everything the phase synthesizer needs, already reduced
// from the choice log. Slices keep encounter order from the log.
type RoadmapInputs struct {
	Skills           []string
	Domains          []string
	InterestedTitles []string
	MaybeTitles      []string
}

// SynthesizePhases builds the fixed three-phase plan from reduced choice
// data. The shape never varies; only step descriptions are personalized.
func SynthesizePhases(in RoadmapInputs) []types.RoadmapPhase {
	coreSkills := in.Skills
	if len(coreSkills) > 5 {
		coreSkills = coreSkills[:5]
	}

	skillsDesc := "Build fluency in the core skills shared by the careers you liked."
	if len(coreSkills) > 0 {
		skillsDesc = "Build fluency in " + strings.Join(coreSkills, ", ") + "."
	}

	domainsDesc := "Survey the domains you explored and how their careers connect."
	if len(in.Domains) > 0 {
		domainsDesc = "Learn the landscape of " + strings.Join(in.Domains, ", ") + "."
	}

	portfolioDesc := "Build hands-on projects that showcase the skills you're developing."
	if len(in.InterestedTitles) > 0 {
		portfolioDesc = fmt.Sprintf("Build projects that mirror the day-to-day work of a %s.", in.InterestedTitles[0])
	}

	explorationTitles := append(append([]string{}, in.InterestedTitles...), in.MaybeTitles...)
	explorationDesc := "Research the careers you reacted to and talk to people doing them."
	if len(explorationTitles) > 0 {
		explorationDesc = "Research and interview people working as: " + strings.Join(explorationTitles, ", ") + "."
	}

	return []types.RoadmapPhase{
		{
			Name:     "Foundation",
			Duration: phaseDuration,
			Steps: []types.RoadmapStep{
				{Title: "Core Skills Development", Description: skillsDesc},
				{Title: "Domain Knowledge", Description: domainsDesc},
			},
		},
		{
			Name:     "Intermediate",
			Duration: phaseDuration,
			Steps: []types.RoadmapStep{
				{Title: "Project Portfolio", Description: portfolioDesc},
				{Title: "Career Exploration", Description: explorationDesc},
			},
		},
		{
			Name:     "Advanced",
			Duration: phaseDuration,
			Steps: []types.RoadmapStep{
				{Title: "Specialization Deep Dive", Description: "Pick the specialization that fits you best and go deep with advanced coursework."},
				{Title: "Career Preparation", Description: "Polish your portfolio, resume and interview skills for applications."},
			},
		},
	}
}

type RoadmapService interface {
	// Generate builds and persists a roadmap from the user's swipe log.
	// Returns ErrNotEnoughChoices when the log is too thin to say anything.
	Generate(ctx context.Context, userID uuid.UUID) (*types.Roadmap, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Roadmap, error)
}

type roadmapService struct {
	db          *gorm.DB
	log         *logger.Logger
	choiceRepo  repos.UserChoiceRepo
	cardRepo    repos.CareerCardRepo
	roadmapRepo repos.RoadmapRepo
	sseBus      bus.Bus
}

func NewRoadmapService(
	db *gorm.DB,
	log *logger.Logger,
	choiceRepo repos.UserChoiceRepo,
	cardRepo repos.CareerCardRepo,
	roadmapRepo repos.RoadmapRepo,
	sseBus bus.Bus,
) RoadmapService {
	return &roadmapService{
		db:          db,
		log:         log.With("service", "RoadmapService"),
		choiceRepo:  choiceRepo,
		cardRepo:    cardRepo,
		roadmapRepo: roadmapRepo,
		sseBus:      sseBus,
	}
}

func (s *roadmapService) Generate(ctx context.Context, userID uuid.UUID) (*types.Roadmap, error) {
	choices, err := s.choiceRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching choices: %w", err)
	}
	if len(choices) < MinChoicesForRoadmap {
		return nil, apperrors.ErrNotEnoughChoices
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

	inputs, breakdown, pairs, difficultyCounts := reduceChoices(choices, cardsByID)
	phases := SynthesizePhases(inputs)

	difficulty := leadingDifficulty(difficultyCounts)
	if difficulty == "" {
		difficulty = types.DifficultyIntermediate
	}

	title := "Your Career Roadmap"
	if len(inputs.Domains) > 0 {
		title = "Your " + inputs.Domains[0] + " Career Roadmap"
	}

	roadmap := &types.Roadmap{
		UserID:              userID,
		Title:               title,
		Domains:             mustJSON(inputs.Domains),
		Skills:              mustJSON(inputs.Skills),
		Difficulty:          difficulty,
		EstimatedCompletion: roadmapEstimatedCompletion,
		Phases:              mustJSON(phases),
		AIConfidence:        roadmapConfidence,
		UserChoices:         mustJSON(pairs),
		CareerBreakdown:     mustJSON(breakdown),
	}

	created, err := s.roadmapRepo.Create(ctx, nil, []*types.Roadmap{roadmap})
	if err != nil {
		return nil, fmt.Errorf("error persisting roadmap: %w", err)
	}
	roadmap = created[0]

	if s.sseBus != nil {
		msg := realtime.SSEMessage{
			Channel: realtime.UserChannel(userID),
			Event:   realtime.SSEEventRoadmapGenerated,
			Data: map[string]any{
				"roadmap_id": roadmap.ID,
				"title":      roadmap.Title,
			},
		}
		if err := s.sseBus.Publish(ctx, msg); err != nil {
			s.log.Warn("Failed to publish roadmap event", "userID", userID, "error", err)
		}
	}

	return roadmap, nil
}

func (s *roadmapService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Roadmap, error) {
	return s.roadmapRepo.GetByUserID(ctx, nil, userID)
}

// reduceChoices walks the swipe log once, collecting deduplicated skills and
// domains in encounter order plus the interested/maybe title split.
func reduceChoices(choices []*types.UserChoice, cards map[uuid.UUID]*types.CareerCard) (RoadmapInputs, types.CareerBreakdown, []types.ChoicePair, map[types.Difficulty]int) {
	var inputs RoadmapInputs
	breakdown := types.CareerBreakdown{Interested: []string{}, Maybe: []string{}}
	pairs := make([]types.ChoicePair, 0, len(choices))
	difficultyCounts := map[types.Difficulty]int{}

	seenSkill := map[string]bool{}
	seenDomain := map[string]bool{}

	for _, choice := range choices {
		pairs = append(pairs, types.ChoicePair{
			CareerCardID: choice.CareerCardID,
			Choice:       choice.Choice,
			ChosenAt:     choice.CreatedAt,
		})

		card, ok := cards[choice.CareerCardID]
		if !ok || choice.Choice == types.ChoiceNotInterested {
			continue
		}

		if !seenDomain[card.DomainName] {
			seenDomain[card.DomainName] = true
			inputs.Domains = append(inputs.Domains, card.DomainName)
		}

		var skills []string
		if len(card.CoreSkills) > 0 {
			_ = json.Unmarshal(card.CoreSkills, &skills)
		}
		for _, skill := range skills {
			if skill == "" || seenSkill[skill] {
				continue
			}
			seenSkill[skill] = true
			inputs.Skills = append(inputs.Skills, skill)
		}

		switch choice.Choice {
		case types.ChoiceInterested:
			inputs.InterestedTitles = append(inputs.InterestedTitles, card.Title)
			breakdown.Interested = append(breakdown.Interested, card.Title)
			difficultyCounts[card.Difficulty]++
		case types.ChoiceMaybe:
			inputs.MaybeTitles = append(inputs.MaybeTitles, card.Title)
			breakdown.Maybe = append(breakdown.Maybe, card.Title)
		}
	}

	return inputs, breakdown, pairs, difficultyCounts
}

func mustJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(raw)
}
