package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/compasslearn/compass-backend/internal/http/response"
	"github.com/compasslearn/compass-backend/internal/requestdata"
	"github.com/compasslearn/compass-backend/internal/services"
)

type CardHandler struct {
	cardSupply services.CardSupplyService
}

func NewCardHandler(cardSupply services.CardSupplyService) *CardHandler {
	return &CardHandler{cardSupply: cardSupply}
}

// FetchBatch returns a fresh shuffled deck for a domain.
func (ch *CardHandler) FetchBatch(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Domain string `json:"domain"`
		Count  int    `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cards, err := ch.cardSupply.FetchBatch(c.Request.Context(), rd.UserID, req.Domain, req.Count)
	if err != nil {
		response.RespondError(c, http.StatusBadGateway, "card_supply_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"cards": cards})
}

// FetchMore extends the current deck, skipping cards the client already holds.
func (ch *CardHandler) FetchMore(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		Domain      string   `json:"domain"`
		Count       int      `json:"count"`
		ExistingIDs []string `json:"existing_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	existingIDs := make([]uuid.UUID, 0, len(req.ExistingIDs))
	for _, raw := range req.ExistingIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_card_id", err)
			return
		}
		existingIDs = append(existingIDs, id)
	}
	cards, err := ch.cardSupply.FetchMore(c.Request.Context(), rd.UserID, req.Domain, existingIDs, req.Count)
	if err != nil {
		response.RespondError(c, http.StatusBadGateway, "card_supply_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"cards": cards})
}
