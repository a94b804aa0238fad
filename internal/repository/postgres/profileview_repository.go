package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type profileViewRepository struct {
	db *sqlx.DB
}

func NewProfileViewRepository(db *sqlx.DB) repository.ProfileViewRepository {
	return &profileViewRepository{db: db}
}

func (r *profileViewRepository) Create(ctx context.Context, view *domain.ProfileView) error {
	query := `
		INSERT INTO profile_views (viewer_id, viewed_profile_id)
		VALUES ($1, $2)
		RETURNING id, viewed_at
	`
	err := r.db.QueryRowContext(ctx, query, view.ViewerID, view.ViewedProfileID).
		Scan(&view.ID, &view.ViewedAt)
	if isUniqueViolation(err) {
		return domain.ErrViewAlreadyRecorded
	}
	return err
}

func (r *profileViewRepository) ListByProfile(ctx context.Context, profileID int, limit, offset int) ([]*domain.ProfileView, error) {
	query := `
		SELECT * FROM profile_views
		WHERE viewed_profile_id = $1
		ORDER BY viewed_at DESC
		LIMIT $2 OFFSET $3
	`
	views := []*domain.ProfileView{}
	err := r.db.SelectContext(ctx, &views, query, profileID, limit, offset)
	return views, err
}
