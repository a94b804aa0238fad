package repository

import (
	"context"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Search(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]*domain.Profile, error)
	Count(ctx context.Context, filter domain.SearchFilter) (int, error)
	IncrementViewCount(ctx context.Context, profileID int) error
}
