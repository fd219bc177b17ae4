package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compasslearn/compass-backend/internal/types"
)

type profileFixture struct {
	choices []*types.UserChoice
	cards   map[uuid.UUID]*types.CareerCard
}

func newProfileFixture() *profileFixture {
	return &profileFixture{cards: map[uuid.UUID]*types.CareerCard{}}
}

func (f *profileFixture) swipe(domain string, choice types.Choice, growth int, difficulty types.Difficulty) {
	card := &types.CareerCard{
		ID:         uuid.New(),
		Title:      domain + " Career",
		DomainName: domain,
		Growth:     growth,
		Difficulty: difficulty,
	}
	f.cards[card.ID] = card
	f.choices = append(f.choices, &types.UserChoice{
		ID:           uuid.New(),
		CareerCardID: card.ID,
		Choice:       choice,
		CreatedAt:    time.Now(),
	})
}

func TestSummarizeProfileCountsAndGrowth(t *testing.T) {
	f := newProfileFixture()
	f.swipe("Technology", types.ChoiceInterested, 90, types.DifficultyIntermediate)
	f.swipe("Technology", types.ChoiceInterested, 85, types.DifficultyIntermediate)
	f.swipe("Arts", types.ChoiceMaybe, 10, types.DifficultyBeginner)
	f.swipe("Business", types.ChoiceMaybe, 12, types.DifficultyBeginner)
	f.swipe("Trades", types.ChoiceNotInterested, 20, types.DifficultyAdvanced)

	p := SummarizeProfile(f.choices, f.cards)

	assert.Equal(t, 2, p.InterestedCount)
	assert.Equal(t, 2, p.MaybeCount)
	assert.Equal(t, 1, p.NotInterestedCount)
	require.NotEmpty(t, p.TopCategories)
	assert.Equal(t, "Technology", p.TopCategories[0])
	// (90+85)/2 = 87.5, rounded half up
	assert.Equal(t, 88, p.AverageGrowth)
	assert.Equal(t, types.DifficultyIntermediate, p.TopDifficulty)
	assert.NotEmpty(t, p.Insights)
}

func TestSummarizeProfileEmptyLog(t *testing.T) {
	p := SummarizeProfile(nil, map[uuid.UUID]*types.CareerCard{})

	assert.Zero(t, p.InterestedCount)
	assert.Zero(t, p.MaybeCount)
	assert.Zero(t, p.NotInterestedCount)
	assert.Empty(t, p.TopCategories)
	assert.Zero(t, p.AverageGrowth)
	assert.Empty(t, string(p.TopDifficulty))
	assert.NotEmpty(t, p.Insights)
}

func TestSummarizeProfileTopCategoryTieKeepsEncounterOrder(t *testing.T) {
	f := newProfileFixture()
	// Arts seen first, Technology second, both with one interested swipe
	f.swipe("Arts", types.ChoiceInterested, 10, types.DifficultyBeginner)
	f.swipe("Technology", types.ChoiceInterested, 30, types.DifficultyAdvanced)

	p := SummarizeProfile(f.choices, f.cards)

	require.Len(t, p.TopCategories, 2)
	assert.Equal(t, "Arts", p.TopCategories[0])
	assert.Equal(t, "Technology", p.TopCategories[1])
}

func TestSummarizeProfileTopCategoriesCapped(t *testing.T) {
	f := newProfileFixture()
	for _, domain := range []string{"Arts", "Business", "Healthcare", "Technology"} {
		f.swipe(domain, types.ChoiceInterested, 15, types.DifficultyBeginner)
	}

	p := SummarizeProfile(f.choices, f.cards)
	assert.Len(t, p.TopCategories, 3)
}

func TestSummarizeProfileDifficultyTieBreaksAlphabetically(t *testing.T) {
	f := newProfileFixture()
	f.swipe("Technology", types.ChoiceInterested, 20, types.DifficultyIntermediate)
	f.swipe("Technology", types.ChoiceInterested, 20, types.DifficultyAdvanced)

	p := SummarizeProfile(f.choices, f.cards)
	assert.Equal(t, types.DifficultyAdvanced, p.TopDifficulty)
}

func TestSummarizeProfileNotInterestedDomainsExcludedFromTop(t *testing.T) {
	f := newProfileFixture()
	f.swipe("Trades", types.ChoiceNotInterested, 5, types.DifficultyBeginner)
	f.swipe("Technology", types.ChoiceInterested, 40, types.DifficultyIntermediate)

	p := SummarizeProfile(f.choices, f.cards)
	assert.Equal(t, []string{"Technology"}, p.TopCategories)
}

type stubInterestService struct {
	invalidated []uuid.UUID
}

func (s *stubInterestService) DomainProjections(ctx context.Context, userID uuid.UUID) ([]*types.DomainProjection, error) {
	return nil, nil
}

func (s *stubInterestService) InvalidateProjections(ctx context.Context, userID uuid.UUID) {
	s.invalidated = append(s.invalidated, userID)
}

func TestUpdateInterestsPersistsAndInvalidates(t *testing.T) {
	userRepo := &stubUserRepo{}
	interests := &stubInterestService{}
	svc := NewProfileService(nil, serviceLoggerForTest(t), &stubChoiceRepo{}, &stubCardRepo{}, userRepo, interests)

	userID := uuid.New()
	err := svc.UpdateInterests(context.Background(), userID, []string{" technology ", "", "design"})
	require.NoError(t, err)

	assert.Equal(t, userID, userRepo.interestsFor)
	assert.JSONEq(t, `["technology","design"]`, string(userRepo.interestsPayload))
	// cached projections are stale once declared interests change
	require.Len(t, interests.invalidated, 1)
	assert.Equal(t, userID, interests.invalidated[0])
}
