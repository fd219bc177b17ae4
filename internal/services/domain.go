package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/compasslearn/compass-backend/internal/pkg/errors"
	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
	"github.com/compasslearn/compass-backend/internal/types"
)

type DomainService interface {
	// List returns every domain with the caller's projection applied.
	List(ctx context.Context, userID uuid.UUID) ([]*types.DomainProjection, error)
	// Explore records a deliberate visit into a domain's detail view.
	Explore(ctx context.Context, userID, domainID uuid.UUID, level int, topics []string) (*types.UserExploration, error)
	Seed(ctx context.Context, domains []*types.CareerDomain) error
}

type domainService struct {
	db              *gorm.DB
	log             *logger.Logger
	domainRepo      repos.CareerDomainRepo
	explorationRepo repos.UserExplorationRepo
	interests       InterestService
}

func NewDomainService(
	db *gorm.DB,
	log *logger.Logger,
	domainRepo repos.CareerDomainRepo,
	explorationRepo repos.UserExplorationRepo,
	interests InterestService,
) DomainService {
	return &domainService{
		db:              db,
		log:             log.With("service", "DomainService"),
		domainRepo:      domainRepo,
		explorationRepo: explorationRepo,
		interests:       interests,
	}
}

func (s *domainService) List(ctx context.Context, userID uuid.UUID) ([]*types.DomainProjection, error) {
	return s.interests.DomainProjections(ctx, userID)
}

func (s *domainService) Explore(ctx context.Context, userID, domainID uuid.UUID, level int, topics []string) (*types.UserExploration, error) {
	domains, err := s.domainRepo.GetByIDs(ctx, nil, []uuid.UUID{domainID})
	if err != nil {
		return nil, fmt.Errorf("error fetching domain: %w", err)
	}
	if len(domains) == 0 {
		return nil, fmt.Errorf("domain %s: %w", domainID, apperrors.ErrNotFound)
	}

	if topics == nil {
		topics = []string{}
	}
	topicsJSON, err := json.Marshal(topics)
	if err != nil {
		return nil, fmt.Errorf("error encoding topics: %w", err)
	}

	created, err := s.explorationRepo.Create(ctx, nil, []*types.UserExploration{{
		UserID:   userID,
		DomainID: domainID,
		Level:    level,
		Topics:   datatypes.JSON(topicsJSON),
	}})
	if err != nil {
		return nil, fmt.Errorf("error recording exploration: %w", err)
	}

	s.interests.InvalidateProjections(ctx, userID)
	return created[0], nil
}

// Seed inserts the starter domains once; reruns on a populated table are no-ops.
func (s *domainService) Seed(ctx context.Context, domains []*types.CareerDomain) error {
	count, err := s.domainRepo.CountAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("error counting domains: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := s.domainRepo.Create(ctx, nil, domains); err != nil {
		return fmt.Errorf("error seeding domains: %w", err)
	}
	s.log.Info("Seeded career domains", "count", len(domains))
	return nil
}
