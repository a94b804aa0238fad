package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID int) (*domain.Preference, error) {
	var pref domain.Preference
	query := `
		SELECT id, user_id, min_age, max_age, min_height, max_height,
		       marital_statuses, religions, castes, mother_tongues,
		       educations, occupations, countries, states, cities,
		       created_at, updated_at
		FROM preferences WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&pref.ID, &pref.UserID, &pref.MinAge, &pref.MaxAge,
		&pref.MinHeight, &pref.MaxHeight,
		pq.Array(&pref.MaritalStatuses), pq.Array(&pref.Religions),
		pq.Array(&pref.Castes), pq.Array(&pref.MotherTongues),
		pq.Array(&pref.Educations), pq.Array(&pref.Occupations),
		pq.Array(&pref.Countries), pq.Array(&pref.States), pq.Array(&pref.Cities),
		&pref.CreatedAt, &pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *domain.Preference) error {
	query := `
		INSERT INTO preferences (
			user_id, min_age, max_age, min_height, max_height,
			marital_statuses, religions, castes, mother_tongues,
			educations, occupations, countries, states, cities
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			min_age = EXCLUDED.min_age,
			max_age = EXCLUDED.max_age,
			min_height = EXCLUDED.min_height,
			max_height = EXCLUDED.max_height,
			marital_statuses = EXCLUDED.marital_statuses,
			religions = EXCLUDED.religions,
			castes = EXCLUDED.castes,
			mother_tongues = EXCLUDED.mother_tongues,
			educations = EXCLUDED.educations,
			occupations = EXCLUDED.occupations,
			countries = EXCLUDED.countries,
			states = EXCLUDED.states,
			cities = EXCLUDED.cities,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		pref.UserID, pref.MinAge, pref.MaxAge, pref.MinHeight, pref.MaxHeight,
		pq.Array(pref.MaritalStatuses), pq.Array(pref.Religions),
		pq.Array(pref.Castes), pq.Array(pref.MotherTongues),
		pq.Array(pref.Educations), pq.Array(pref.Occupations),
		pq.Array(pref.Countries), pq.Array(pref.States), pq.Array(pref.Cities),
	).Scan(&pref.ID, &pref.CreatedAt, &pref.UpdatedAt)
}
