package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compasslearn/compass-backend/internal/http/response"
	apperrors "github.com/compasslearn/compass-backend/internal/pkg/errors"
	"github.com/compasslearn/compass-backend/internal/requestdata"
	"github.com/compasslearn/compass-backend/internal/services"
)

type RoadmapHandler struct {
	roadmaps services.RoadmapService
}

func NewRoadmapHandler(roadmaps services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmaps: roadmaps}
}

func (rh *RoadmapHandler) Generate(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	roadmap, err := rh.roadmaps.Generate(c.Request.Context(), rd.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotEnoughChoices) {
			response.RespondError(c, http.StatusUnprocessableEntity, "not_enough_choices", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "generate_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"roadmap": roadmap})
}

func (rh *RoadmapHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	roadmaps, err := rh.roadmaps.ListByUser(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"roadmaps": roadmaps})
}
