package repository

import (
	"context"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *domain.Interest) error
	GetByID(ctx context.Context, id int) (*domain.Interest, error)
	GetByPair(ctx context.Context, senderID, receiverID int) (*domain.Interest, error)
	UpdateStatus(ctx context.Context, id int, status string, respondedAt time.Time) error
	ListBySender(ctx context.Context, senderID int, status string, limit, offset int) ([]*domain.Interest, error)
	ListByReceiver(ctx context.Context, receiverID int, status string, limit, offset int) ([]*domain.Interest, error)
	// HasAcceptedBetween reports whether an accepted interest exists in either
	// direction between the two users.
	HasAcceptedBetween(ctx context.Context, userA, userB int) (bool, error)
}
