package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/compasslearn/compass-backend/internal/http/handlers"
	httpMW "github.com/compasslearn/compass-backend/internal/http/middleware"
)

type RouterConfig struct {
	AuthHandler     *httpH.AuthHandler
	AuthMiddleware  *httpMW.AuthMiddleware
	RealtimeHandler *httpH.RealtimeHandler

	CardHandler     *httpH.CardHandler
	ChoiceHandler   *httpH.ChoiceHandler
	DomainHandler   *httpH.DomainHandler
	ProfileHandler  *httpH.ProfileHandler
	RoadmapHandler  *httpH.RoadmapHandler
	ActivityHandler *httpH.ActivityHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
			api.POST("/refresh", cfg.AuthHandler.Refresh)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Realtime (SSE)
		if cfg.RealtimeHandler != nil {
			protected.GET("/sse/stream", cfg.RealtimeHandler.SSEStream)
		}

		// Career cards
		if cfg.CardHandler != nil {
			protected.POST("/cards/batch", cfg.CardHandler.FetchBatch)
			protected.POST("/cards/more", cfg.CardHandler.FetchMore)
		}

		// Choices
		if cfg.ChoiceHandler != nil {
			protected.POST("/choices", cfg.ChoiceHandler.Record)
			protected.GET("/choices", cfg.ChoiceHandler.List)
			protected.DELETE("/choices", cfg.ChoiceHandler.Clear)
			protected.POST("/choices/reconcile", cfg.ChoiceHandler.Reconcile)
		}

		// Domains
		if cfg.DomainHandler != nil {
			protected.GET("/domains", cfg.DomainHandler.List)
			protected.POST("/domains/:id/explore", cfg.DomainHandler.Explore)
		}

		// Interest profile
		if cfg.ProfileHandler != nil {
			protected.GET("/profile/summary", cfg.ProfileHandler.Summary)
			protected.PUT("/profile/interests", cfg.ProfileHandler.UpdateInterests)
		}

		// Roadmaps
		if cfg.RoadmapHandler != nil {
			protected.POST("/roadmaps", cfg.RoadmapHandler.Generate)
			protected.GET("/roadmaps", cfg.RoadmapHandler.List)
		}

		// Activity
		if cfg.ActivityHandler != nil {
			protected.POST("/activity", cfg.ActivityHandler.Track)
			protected.GET("/activity", cfg.ActivityHandler.Recent)
		}
	}

	return r
}
