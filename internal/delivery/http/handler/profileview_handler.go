package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/profileview"
)

type ProfileViewHandler struct {
	viewUseCase *profileview.ProfileViewUseCase
}

func NewProfileViewHandler(viewUseCase *profileview.ProfileViewUseCase) *ProfileViewHandler {
	return &ProfileViewHandler{viewUseCase: viewUseCase}
}

type trackViewRequest struct {
	ProfileID int `json:"profile_id" binding:"required"`
}

// TrackView handles POST /profile-views. Self-views and repeat views succeed
// without recording anything.
func (h *ProfileViewHandler) TrackView(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req trackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}

	recorded, err := h.viewUseCase.TrackView(c.Request.Context(), actor.UserID, req.ProfileID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"recorded": recorded})
}

// ListViewers handles GET /profile-views
func (h *ProfileViewHandler) ListViewers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	limit, skip := pagination(c, 20, 100)

	viewers, err := h.viewUseCase.ListViewers(c.Request.Context(), actor.UserID, limit, skip)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"viewers": viewers})
}
