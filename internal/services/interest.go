package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

const (
	interestBase        = 30
	interestCeiling     = 95
	declaredMatchBoost  = 30
	interestedBoost     = 15
	maybeBoost          = 8
	projectionsCacheTTL = 30 * time.Second
)

// ComputeInterestLevel scores how engaged a user is with one domain.
// Every domain starts at the base so fresh accounts still render a bar;
// the ceiling holds no matter how many cards a user swipes.
func ComputeInterestLevel(domainName string, declaredInterests []string, interestedCount, maybeCount int) int {
	level := interestBase

	domainLower := strings.ToLower(strings.TrimSpace(domainName))
	for _, interest := range declaredInterests {
		interestLower := strings.ToLower(strings.TrimSpace(interest))
		if interestLower == "" {
			continue
		}
		if strings.Contains(domainLower, interestLower) || strings.Contains(interestLower, domainLower) {
			level += declaredMatchBoost
			break
		}
	}

	level += interestedCount * interestedBoost
	level += maybeCount * maybeBoost

	if level > interestCeiling {
		level = interestCeiling
	}
	if level < interestBase {
		level = interestBase
	}
	return level
}

type InterestService interface {
	// DomainProjections recomputes the per-user view of every domain from the
	// choice log and explorations. Results are cached briefly per user.
	DomainProjections(ctx context.Context, userID uuid.UUID) ([]*types.DomainProjection, error)
	InvalidateProjections(ctx context.Context, userID uuid.UUID)
}

type interestService struct {
	db              *gorm.DB
	log             *logger.Logger
	userRepo        repos.UserRepo
	domainRepo      repos.CareerDomainRepo
	cardRepo        repos.CareerCardRepo
	choiceRepo      repos.UserChoiceRepo
	explorationRepo repos.UserExplorationRepo
	rdb             *goredis.Client
}

func NewInterestService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	domainRepo repos.CareerDomainRepo,
	cardRepo repos.CareerCardRepo,
	choiceRepo repos.UserChoiceRepo,
	explorationRepo repos.UserExplorationRepo,
	rdb *goredis.Client,
) InterestService {
	return &interestService{
		db:              db,
		log:             log.With("service", "InterestService"),
		userRepo:        userRepo,
		domainRepo:      domainRepo,
		cardRepo:        cardRepo,
		choiceRepo:      choiceRepo,
		explorationRepo: explorationRepo,
		rdb:             rdb,
	}
}

func projectionsCacheKey(userID uuid.UUID) string {
	return "projections:" + userID.String()
}

func (s *interestService) DomainProjections(ctx context.Context, userID uuid.UUID) ([]*types.DomainProjection, error) {
	if cached := s.readCache(ctx, userID); cached != nil {
		return cached, nil
	}

	var (
		users        []*types.User
		domains      []*types.CareerDomain
		choices      []*types.UserChoice
		explorations []*types.UserExploration
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.GetByIDs(gctx, nil, []uuid.UUID{userID})
		return err
	})
	g.Go(func() error {
		var err error
		domains, err = s.domainRepo.GetAll(gctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		choices, err = s.choiceRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		explorations, err = s.explorationRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var declared []string
	if len(users) > 0 && users[0] != nil && len(users[0].Interests) > 0 {
		if err := json.Unmarshal(users[0].Interests, &declared); err != nil {
			s.log.Warn("Malformed declared interests, ignoring", "userID", userID, "error", err)
		}
	}

	cardIDs := make([]uuid.UUID, 0, len(choices))
	for _, c := range choices {
		cardIDs = append(cardIDs, c.CareerCardID)
	}
	cards, err := s.cardRepo.GetByIDs(ctx, nil, cardIDs)
	if err != nil {
		return nil, err
	}
	cardDomain := make(map[uuid.UUID]string, len(cards))
	for _, card := range cards {
		cardDomain[card.ID] = card.DomainName
	}

	type domainStats struct {
		interested     int
		maybe          int
		interactions   int
		lastInteracted *time.Time
	}
	stats := make(map[string]*domainStats, len(domains))
	statsFor := func(name string) *domainStats {
		ds, ok := stats[name]
		if !ok {
			ds = &domainStats{}
			stats[name] = ds
		}
		return ds
	}

	for _, c := range choices {
		name, ok := cardDomain[c.CareerCardID]
		if !ok {
			continue
		}
		ds := statsFor(name)
		ds.interactions++
		switch c.Choice {
		case types.ChoiceInterested:
			ds.interested++
		case types.ChoiceMaybe:
			ds.maybe++
		}
		t := c.CreatedAt
		if ds.lastInteracted == nil || t.After(*ds.lastInteracted) {
			ds.lastInteracted = &t
		}
	}

	domainNameByID := make(map[uuid.UUID]string, len(domains))
	for _, d := range domains {
		domainNameByID[d.ID] = d.Name
	}
	for _, e := range explorations {
		name, ok := domainNameByID[e.DomainID]
		if !ok {
			continue
		}
		ds := statsFor(name)
		ds.interactions++
		t := e.CreatedAt
		if ds.lastInteracted == nil || t.After(*ds.lastInteracted) {
			ds.lastInteracted = &t
		}
	}

	projections := make([]*types.DomainProjection, 0, len(domains))
	for _, d := range domains {
		ds := statsFor(d.Name)

		var skills, careers []string
		if len(d.Skills) > 0 {
			_ = json.Unmarshal(d.Skills, &skills)
		}
		if len(d.Careers) > 0 {
			_ = json.Unmarshal(d.Careers, &careers)
		}

		projections = append(projections, &types.DomainProjection{
			ID:                d.ID,
			Name:              d.Name,
			Icon:              d.Icon,
			Color:             d.Color,
			Skills:            skills,
			Careers:           careers,
			InterestLevel:     ComputeInterestLevel(d.Name, declared, ds.interested, ds.maybe),
			TotalInteractions: ds.interactions,
			LastInteracted:    ds.lastInteracted,
		})
	}

	s.writeCache(ctx, userID, projections)
	return projections, nil
}

func (s *interestService) InvalidateProjections(ctx context.Context, userID uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, projectionsCacheKey(userID)).Err(); err != nil {
		s.log.Warn("Failed to invalidate projections cache", "userID", userID, "error", err)
	}
}

func (s *interestService) readCache(ctx context.Context, userID uuid.UUID) []*types.DomainProjection {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, projectionsCacheKey(userID)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			s.log.Warn("Projections cache read failed", "userID", userID, "error", err)
		}
		return nil
	}
	var projections []*types.DomainProjection
	if err := json.Unmarshal(raw, &projections); err != nil {
		s.log.Warn("Projections cache payload malformed", "userID", userID, "error", err)
		return nil
	}
	return projections
}

func (s *interestService) writeCache(ctx context.Context, userID uuid.UUID, projections []*types.DomainProjection) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(projections)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, projectionsCacheKey(userID), raw, projectionsCacheTTL).Err(); err != nil {
		s.log.Warn("Projections cache write failed", "userID", userID, "error", err)
	}
}
