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
)

type DomainHandler struct {
	domains services.DomainService
}

func NewDomainHandler(domains services.DomainService) *DomainHandler {
	return &DomainHandler{domains: domains}
}

// List returns all domains with the caller's interest levels applied.
func (dh *DomainHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	projections, err := dh.domains.List(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"domains": projections})
}

func (dh *DomainHandler) Explore(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	domainID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_domain_id", err)
		return
	}
	var req struct {
		Level  int      `json:"level"`
		Topics []string `json:"topics"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	exploration, err := dh.domains.Explore(c.Request.Context(), rd.UserID, domainID, req.Level, req.Topics)
	if err != nil {
		status := http.StatusInternalServerError
		code := "explore_failed"
		if errors.Is(err, apperrors.ErrNotFound) {
			status = http.StatusNotFound
			code = "domain_not_found"
		}
		response.RespondError(c, status, code, err)
		return
	}
	response.RespondOK(c, gin.H{"exploration": exploration})
}
