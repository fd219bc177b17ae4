package app

import (
	httpH "github.com/compasslearn/compass-backend/internal/http/handlers"
	"github.com/compasslearn/compass-backend/internal/pkg/logger"
	"github.com/compasslearn/compass-backend/internal/realtime"
)

type Handlers struct {
	Auth     *httpH.AuthHandler
	Health   *httpH.HealthHandler
	Realtime *httpH.RealtimeHandler
	Card     *httpH.CardHandler
	Choice   *httpH.ChoiceHandler
	Domain   *httpH.DomainHandler
	Profile  *httpH.ProfileHandler
	Roadmap  *httpH.RoadmapHandler
	Activity *httpH.ActivityHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, hub *realtime.SSEHub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     httpH.NewAuthHandler(serviceset.Auth),
		Health:   httpH.NewHealthHandler(),
		Realtime: httpH.NewRealtimeHandler(log, hub),
		Card:     httpH.NewCardHandler(serviceset.CardSupply),
		Choice:   httpH.NewChoiceHandler(serviceset.Choice),
		Domain:   httpH.NewDomainHandler(serviceset.Domain),
		Profile:  httpH.NewProfileHandler(serviceset.Profile),
		Roadmap:  httpH.NewRoadmapHandler(serviceset.Roadmap),
		Activity: httpH.NewActivityHandler(serviceset.Activity),
	}
}
