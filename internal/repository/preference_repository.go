package repository

import (
	"context"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type PreferenceRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Preference, error)
	Upsert(ctx context.Context, pref *domain.Preference) error
}
