package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/clients/cardgen"
	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/types"
)

type stubGenerator struct {
	cards []cardgen.GeneratedCard
	err   error
	calls int
}

func (g *stubGenerator) GenerateCards(ctx context.Context, domain string, profile cardgen.UserProfile, count int) ([]cardgen.GeneratedCard, error) {
	g.calls++
	return g.cards, g.err
}

type stubCardRepo struct {
	cards    []*types.CareerCard
	created  []*types.CareerCard
	seedDeck []*types.CareerCard
	excluded []uuid.UUID
}

func (r *stubCardRepo) Create(ctx context.Context, tx *gorm.DB, cards []*types.CareerCard) ([]*types.CareerCard, error) {
	for _, c := range cards {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
	}
	r.created = append(r.created, cards...)
	return cards, nil
}

func (r *stubCardRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.CareerCard, error) {
	want := map[uuid.UUID]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []*types.CareerCard
	for _, c := range r.cards {
		if want[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCardRepo) GetByDomainNames(ctx context.Context, tx *gorm.DB, domainNames []string) ([]*types.CareerCard, error) {
	return nil, nil
}

func (r *stubCardRepo) GetBySourceExcluding(ctx context.Context, tx *gorm.DB, source string, excludeIDs []uuid.UUID, limit int) ([]*types.CareerCard, error) {
	r.excluded = excludeIDs
	if len(r.seedDeck) > limit {
		return r.seedDeck[:limit], nil
	}
	return r.seedDeck, nil
}

func (r *stubCardRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(r.seedDeck) + len(r.created)), nil
}

type stubUserRepo struct {
	interestsFor     uuid.UUID
	interestsPayload []byte
}

func (r *stubUserRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	return users, nil
}
func (r *stubUserRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.User, error) {
	return nil, nil
}
func (r *stubUserRepo) GetByEmails(ctx context.Context, tx *gorm.DB, emails []string) ([]*types.User, error) {
	return nil, nil
}
func (r *stubUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	return false, nil
}
func (r *stubUserRepo) UpdateInterests(ctx context.Context, tx *gorm.DB, userID uuid.UUID, interests []byte) error {
	r.interestsFor = userID
	r.interestsPayload = interests
	return nil
}

func serviceLoggerForTest(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func generatedCards(titles ...string) []cardgen.GeneratedCard {
	out := make([]cardgen.GeneratedCard, 0, len(titles))
	for _, title := range titles {
		out = append(out, cardgen.GeneratedCard{
			Title:      title,
			Domain:     "Technology",
			Difficulty: "intermediate",
			Growth:     20,
		})
	}
	return out
}

func TestFetchBatchPersistsGeneratedCards(t *testing.T) {
	cardRepo := &stubCardRepo{}
	gen := &stubGenerator{cards: generatedCards("A", "B", "C")}
	svc := NewCardSupplyService(nil, serviceLoggerForTest(t), cardRepo, &stubUserRepo{}, gen)

	cards, err := svc.FetchBatch(context.Background(), uuid.Nil, "Technology", 3)
	require.NoError(t, err)
	assert.Len(t, cards, 3)
	assert.Len(t, cardRepo.created, 3)
	for _, c := range cards {
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.Equal(t, "generator", c.Source)
	}
}

func TestFetchMoreKeepsArrivalOrder(t *testing.T) {
	cardRepo := &stubCardRepo{}
	gen := &stubGenerator{cards: generatedCards("First", "Second", "Third")}
	svc := NewCardSupplyService(nil, serviceLoggerForTest(t), cardRepo, &stubUserRepo{}, gen)

	cards, err := svc.FetchMore(context.Background(), uuid.Nil, "Technology", nil, 3)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	assert.Equal(t, "First", cards[0].Title)
	assert.Equal(t, "Second", cards[1].Title)
	assert.Equal(t, "Third", cards[2].Title)
}

func TestGeneratorFailureSurfacesWithNoCards(t *testing.T) {
	cardRepo := &stubCardRepo{seedDeck: []*types.CareerCard{{ID: uuid.New(), Title: "Seed", Source: "seed"}}}
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewCardSupplyService(nil, serviceLoggerForTest(t), cardRepo, &stubUserRepo{}, gen)

	cards, err := svc.FetchBatch(context.Background(), uuid.Nil, "Technology", 5)
	require.Error(t, err)
	assert.Nil(t, cards)
	// no silent fallback to seeds when a configured generator fails
	assert.Empty(t, cardRepo.created)
}

func TestNilGeneratorFallsBackToSeedDeck(t *testing.T) {
	seed := []*types.CareerCard{
		{ID: uuid.New(), Title: "Seed A", Source: "seed"},
		{ID: uuid.New(), Title: "Seed B", Source: "seed"},
	}
	cardRepo := &stubCardRepo{seedDeck: seed}
	svc := NewCardSupplyService(nil, serviceLoggerForTest(t), cardRepo, &stubUserRepo{}, nil)

	cards, err := svc.FetchBatch(context.Background(), uuid.Nil, "Technology", 5)
	require.NoError(t, err)
	assert.Len(t, cards, 2)

	exclude := []uuid.UUID{seed[0].ID}
	_, err = svc.FetchMore(context.Background(), uuid.Nil, "Technology", exclude, 5)
	require.NoError(t, err)
	assert.Equal(t, exclude, cardRepo.excluded)
}

func TestSeedInsertsStarterDeckOnce(t *testing.T) {
	cardRepo := &stubCardRepo{}
	svc := NewCardSupplyService(nil, serviceLoggerForTest(t), cardRepo, &stubUserRepo{}, nil)

	deck := []*types.CareerCard{
		{Title: "Seed A", DomainName: "Technology", Source: "seed"},
		{Title: "Seed B", DomainName: "Science", Source: "seed"},
	}
	require.NoError(t, svc.Seed(context.Background(), deck))
	assert.Len(t, cardRepo.created, 2)

	// a populated table is left alone
	require.NoError(t, svc.Seed(context.Background(), deck))
	assert.Len(t, cardRepo.created, 2)
}

func TestUnknownDifficultyDefaultsToIntermediate(t *testing.T) {
	cardRepo := &stubCardRepo{}
	gen := &stubGenerator{cards: []cardgen.GeneratedCard{{Title: "X", Domain: "Arts", Difficulty: "expert"}}}
	svc := NewCardSupplyService(nil, serviceLoggerForTest(t), cardRepo, &stubUserRepo{}, gen)

	cards, err := svc.FetchMore(context.Background(), uuid.Nil, "Arts", nil, 1)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, types.DifficultyIntermediate, cards[0].Difficulty)
}
