package app

import (
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/clients/cardgen"
	"github.com/compasslearn/compass-backend/internal/clients/profilesync"
	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/realtime/bus"
	"github.com/compasslearn/compass-backend/internal/services"
	syncworker "github.com/compasslearn/compass-backend/internal/sync"
)

type Services struct {
	Auth       services.AuthService
	Interest   services.InterestService
	Choice     services.ChoiceService
	Profile    services.ProfileService
	CardSupply services.CardSupplyService
	Roadmap    services.RoadmapService
	Domain     services.DomainService
	Activity   services.ActivityService

	SSEBus     bus.Bus
	SyncWorker *syncworker.Worker
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	// redis is optional: without it projections are recomputed per request
	// and SSE events stay process-local
	var rdb *goredis.Client
	var sseBus bus.Bus
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		rdb = goredis.NewClient(&goredis.Options{
			Addr:        addr,
			DialTimeout: 5 * time.Second,
		})
		b, err := bus.NewRedisBus(log)
		if err != nil {
			log.Warn("Redis SSE bus unavailable", "error", err)
		} else {
			sseBus = b
		}
	} else {
		log.Warn("REDIS_ADDR not set; projection cache and SSE bus disabled")
	}

	var generator services.CardGenerator
	if cfg.CardGenBaseURL != "" {
		gc, err := cardgen.New(cardgen.Config{
			BaseURL: cfg.CardGenBaseURL,
			APIKey:  cfg.CardGenAPIKey,
		})
		if err != nil {
			return Services{}, err
		}
		generator = gc
	} else {
		log.Warn("CARDGEN_BASE_URL not set; serving seed deck only")
	}

	var profileSync *profilesync.Client
	if cfg.ProfileSyncBaseURL != "" {
		pc, err := profilesync.New(profilesync.Config{
			BaseURL: cfg.ProfileSyncBaseURL,
			APIKey:  cfg.ProfileSyncAPIKey,
		})
		if err != nil {
			return Services{}, err
		}
		profileSync = pc
	} else {
		log.Warn("PROFILE_SYNC_BASE_URL not set; outbox entries will accumulate unsent")
	}

	interest := services.NewInterestService(db, log, reposet.User, reposet.CareerDomain, reposet.CareerCard, reposet.UserChoice, reposet.UserExploration, rdb)

	var remote services.RemoteChoiceFetcher
	var pusher syncworker.Pusher
	if profileSync != nil {
		remote = profileSync
		pusher = profileSync
	}

	return Services{
		Auth:       services.NewAuthService(db, log, reposet.User, reposet.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Interest:   interest,
		Choice:     services.NewChoiceService(db, log, reposet.UserChoice, reposet.CareerCard, reposet.Outbox, interest, remote),
		Profile:    services.NewProfileService(db, log, reposet.UserChoice, reposet.CareerCard, reposet.User, interest),
		CardSupply: services.NewCardSupplyService(db, log, reposet.CareerCard, reposet.User, generator),
		Roadmap:    services.NewRoadmapService(db, log, reposet.UserChoice, reposet.CareerCard, reposet.Roadmap, sseBus),
		Domain:     services.NewDomainService(db, log, reposet.CareerDomain, reposet.UserExploration, interest),
		Activity:   services.NewActivityService(db, log, reposet.UserActivity, reposet.Outbox),
		SSEBus:     sseBus,
		SyncWorker: syncworker.NewWorker(db, log, reposet.Outbox, pusher),
	}, nil
}
