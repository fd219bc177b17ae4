package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/compasslearn/compass-backend/internal/http/response"
	"github.com/compasslearn/compass-backend/internal/requestdata"
	"github.com/compasslearn/compass-backend/internal/services"
)

type ActivityHandler struct {
	activities services.ActivityService
}

func NewActivityHandler(activities services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

func (ah *ActivityHandler) Track(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.Type == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", nil)
		return
	}
	activity, err := ah.activities.Track(c.Request.Context(), rd.UserID, req.Type, req.Data)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "track_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"activity": activity})
}

func (ah *ActivityHandler) Recent(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	activities, err := ah.activities.Recent(c.Request.Context(), rd.UserID, limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"activities": activities})
}
