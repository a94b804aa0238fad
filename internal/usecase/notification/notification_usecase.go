package notification

import (
	"context"
	"fmt"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationUseCase(notifRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo}
}

type NotificationListResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

func (uc *NotificationUseCase) List(ctx context.Context, userID int, unreadOnly bool, limit, offset int) (*NotificationListResponse, error) {
	notifications, err := uc.notifRepo.ListByUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := uc.notifRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one notification read; only the owning user may do so.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID int) error {
	return uc.notifRepo.MarkRead(ctx, id, userID)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID int) error {
	return uc.notifRepo.MarkAllRead(ctx, userID)
}
