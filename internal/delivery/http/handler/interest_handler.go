package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/interest"
)

type InterestHandler struct {
	interestUseCase *interest.InterestUseCase
}

func NewInterestHandler(interestUseCase *interest.InterestUseCase) *InterestHandler {
	return &InterestHandler{interestUseCase: interestUseCase}
}

// SendInterest handles POST /interests
// @Summary Send an interest to another user
// @Tags interests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body interest.SendInterestRequest true "Interest data"
// @Router /interests [post]
func (h *InterestHandler) SendInterest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req interest.SendInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}

	created, err := h.interestUseCase.SendInterest(c.Request.Context(), actor.UserID, &req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, gin.H{"interest_id": created.ID})
}

type respondRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// RespondToInterest handles PUT /interests/:id
func (h *InterestHandler) RespondToInterest(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid interest id")
		return
	}

	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c)
		return
	}

	updated, err := h.interestUseCase.RespondToInterest(c.Request.Context(), id, actor.UserID, req.Status)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	mutual, err := h.interestUseCase.IsMatched(c.Request.Context(), updated.SenderID, updated.ReceiverID)
	if err != nil {
		mutual = false
	}

	respondSuccess(c, http.StatusOK, gin.H{
		"interest": updated,
		"is_match": mutual,
	})
}

// ListInterests handles GET /interests?type=sent|received&status=
func (h *InterestHandler) ListInterests(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	direction := c.DefaultQuery("type", interest.DirectionReceived)
	status := c.Query("status")
	limit, skip := pagination(c, 20, 100)

	items, err := h.interestUseCase.ListInterests(c.Request.Context(), actor.UserID, direction, status, limit, skip)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"interests": items})
}
