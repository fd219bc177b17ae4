package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/compasslearn/compass-backend/internal/http"
)

func wireRouter(handlerset Handlers, middleware Middleware) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		AuthHandler:     handlerset.Auth,
		AuthMiddleware:  middleware.Auth,
		RealtimeHandler: handlerset.Realtime,
		CardHandler:     handlerset.Card,
		ChoiceHandler:   handlerset.Choice,
		DomainHandler:   handlerset.Domain,
		ProfileHandler:  handlerset.Profile,
		RoadmapHandler:  handlerset.Roadmap,
		ActivityHandler: handlerset.Activity,
		HealthHandler:   handlerset.Health,
	})
}
