package repository

import (
	"context"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type ProfileViewRepository interface {
	// Create inserts a view record. A duplicate (viewer, profile) pair returns
	// domain.ErrViewAlreadyRecorded.
	Create(ctx context.Context, view *domain.ProfileView) error
	ListByProfile(ctx context.Context, profileID int, limit, offset int) ([]*domain.ProfileView, error)
}
