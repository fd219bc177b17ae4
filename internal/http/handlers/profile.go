package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/compasslearn/compass-backend/internal/http/response"
	"github.com/compasslearn/compass-backend/internal/requestdata"
	"github.com/compasslearn/compass-backend/internal/services"
)

type ProfileHandler struct {
	profiles services.ProfileService
}

func NewProfileHandler(profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Summary derives an interest profile from the caller's swipe log.
func (ph *ProfileHandler) Summary(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	profile, err := ph.profiles.Summarize(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "summary_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"profile": profile})
}

// UpdateInterests replaces the caller's declared interest list.
func (ph *ProfileHandler) UpdateInterests(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var body struct {
		Interests []string `json:"interests"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if err := ph.profiles.UpdateInterests(c.Request.Context(), rd.UserID, body.Interests); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "interests_update_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"interests": body.Interests})
}
