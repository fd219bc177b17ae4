package app

import (
	"gorm.io/gorm"

	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/repos"
)

type Repos struct {
	User            repos.UserRepo
	UserToken       repos.UserTokenRepo
	CareerDomain    repos.CareerDomainRepo
	CareerCard      repos.CareerCardRepo
	UserChoice      repos.UserChoiceRepo
	UserExploration repos.UserExplorationRepo
	UserActivity    repos.UserActivityRepo
	Roadmap         repos.RoadmapRepo
	Outbox          repos.OutboxRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:            repos.NewUserRepo(db, log),
		UserToken:       repos.NewUserTokenRepo(db, log),
		CareerDomain:    repos.NewCareerDomainRepo(db, log),
		CareerCard:      repos.NewCareerCardRepo(db, log),
		UserChoice:      repos.NewUserChoiceRepo(db, log),
		UserExploration: repos.NewUserExplorationRepo(db, log),
		UserActivity:    repos.NewUserActivityRepo(db, log),
		Roadmap:         repos.NewRoadmapRepo(db, log),
		Outbox:          repos.NewOutboxRepo(db, log),
	}
}
