package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/notification"
)

type NotificationHandler struct {
	notifUseCase *notification.NotificationUseCase
}

func NewNotificationHandler(notifUseCase *notification.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{notifUseCase: notifUseCase}
}

// List handles GET /notifications?unread=&skip=&limit=
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	limit, skip := pagination(c, 20, 100)

	resp, err := h.notifUseCase.List(c.Request.Context(), actor.UserID, unreadOnly, limit, skip)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// MarkRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid notification id")
		return
	}

	if err := h.notifUseCase.MarkRead(c.Request.Context(), id, actor.UserID); err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "notification marked as read"})
}

// MarkAllRead handles PUT /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.notifUseCase.MarkAllRead(c.Request.Context(), actor.UserID); err != nil {
		respondDomainError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "all notifications marked as read"})
}
