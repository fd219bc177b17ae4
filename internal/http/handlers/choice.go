package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/compasslearn/compass-backend/internal/http/response"
	apperrors "github.com/compasslearn/compass-backend/internal/pkg/errors"
	"github.com/compasslearn/compass-backend/internal/requestdata"
	"github.com/compasslearn/compass-backend/internal/services"
	"github.com/compasslearn/compass-backend/internal/types"
)

type ChoiceHandler struct {
	choices services.ChoiceService
}

func NewChoiceHandler(choices services.ChoiceService) *ChoiceHandler {
	return &ChoiceHandler{choices: choices}
}

func (ch *ChoiceHandler) Record(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		CareerCardID string `json:"career_card_id"`
		Choice       string `json:"choice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cardID, err := uuid.Parse(req.CareerCardID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_card_id", err)
		return
	}
	choice, err := types.ParseChoice(req.Choice)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_choice", err)
		return
	}
	recorded, err := ch.choices.Record(c.Request.Context(), rd.UserID, cardID, choice)
	if err != nil {
		status := http.StatusInternalServerError
		code := "record_failed"
		if errors.Is(err, apperrors.ErrNotFound) {
			status = http.StatusNotFound
			code = "card_not_found"
		}
		response.RespondError(c, status, code, err)
		return
	}
	response.RespondOK(c, gin.H{"choice": recorded})
}

func (ch *ChoiceHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	choices, err := ch.choices.List(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"choices": choices})
}

func (ch *ChoiceHandler) Clear(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	if err := ch.choices.Clear(c.Request.Context(), rd.UserID); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "clear_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

// Reconcile pulls the remote choice log and merges it into the local one.
func (ch *ChoiceHandler) Reconcile(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	merged, err := ch.choices.Reconcile(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "reconcile_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"choices": merged})
}
