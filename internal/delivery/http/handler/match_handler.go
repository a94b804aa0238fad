package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// ListMatches handles GET /matches?type=all|premium|new|recommended
func (h *MatchHandler) ListMatches(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	matchType := c.DefaultQuery("type", match.TypeAll)
	switch matchType {
	case match.TypeAll, match.TypePremium, match.TypeNew, match.TypeRecommended:
	default:
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid match type")
		return
	}

	limit, skip := pagination(c, 20, 100)

	resp, err := h.matchUseCase.ListMatches(c.Request.Context(), actor.UserID, matchType, limit, skip)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}
