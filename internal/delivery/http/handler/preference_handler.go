package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/preference"
)

type PreferenceHandler struct {
	prefUseCase *preference.PreferenceUseCase
}

func NewPreferenceHandler(prefUseCase *preference.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{prefUseCase: prefUseCase}
}

// GetMyPreference handles GET /preferences/me
func (h *PreferenceHandler) GetMyPreference(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	pref, err := h.prefUseCase.GetMyPreference(c.Request.Context(), actor.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, pref)
}

// UpsertMyPreference handles PUT /preferences/me
func (h *PreferenceHandler) UpsertMyPreference(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req preference.UpsertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}

	pref, err := h.prefUseCase.UpsertPreference(c.Request.Context(), actor.UserID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, pref)
}
