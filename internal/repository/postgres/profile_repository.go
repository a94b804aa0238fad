package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, name, gender, date_of_birth, age, religion, caste,
			mother_tongue, marital_status, education, occupation,
			country, state, city, about, phone, photos,
			profile_visibility, photo_visibility, phone_visibility,
			is_premium, premium_expires_at, completion
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.Name, profile.Gender, profile.DateOfBirth, profile.Age,
		profile.Religion, profile.Caste, profile.MotherTongue, profile.MaritalStatus,
		profile.Education, profile.Occupation, profile.Country, profile.State, profile.City,
		profile.About, profile.Phone, profile.Photos,
		profile.ProfileVisibility, profile.PhotoVisibility, profile.PhoneVisibility,
		profile.IsPremium, profile.PremiumExpiresAt, profile.Completion,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrProfileAlreadyExists
	}
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, gender = $2, date_of_birth = $3, age = $4,
		    religion = $5, caste = $6, mother_tongue = $7, marital_status = $8,
		    education = $9, occupation = $10, country = $11, state = $12,
		    city = $13, about = $14, phone = $15, photos = $16,
		    profile_visibility = $17, photo_visibility = $18, phone_visibility = $19,
		    is_premium = $20, premium_expires_at = $21, completion = $22,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $23
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.Name, profile.Gender, profile.DateOfBirth, profile.Age,
		profile.Religion, profile.Caste, profile.MotherTongue, profile.MaritalStatus,
		profile.Education, profile.Occupation, profile.Country, profile.State, profile.City,
		profile.About, profile.Phone, profile.Photos,
		profile.ProfileVisibility, profile.PhotoVisibility, profile.PhoneVisibility,
		profile.IsPremium, profile.PremiumExpiresAt, profile.Completion,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

// buildFilter translates a SearchFilter into a WHERE clause. Hidden profiles
// never match, independent of the caller's filter.
func buildFilter(filter domain.SearchFilter) (string, []interface{}) {
	where := ` WHERE profile_visibility <> 'hidden'`
	args := []interface{}{}
	argCount := 1

	if filter.Gender != "" {
		where += fmt.Sprintf(" AND gender = $%d", argCount)
		args = append(args, filter.Gender)
		argCount++
	}

	if len(filter.Religions) > 0 {
		where += fmt.Sprintf(" AND LOWER(religion) = ANY($%d)", argCount)
		args = append(args, pq.Array(lowerAll(filter.Religions)))
		argCount++
	}

	if len(filter.MaritalStatuses) > 0 {
		where += fmt.Sprintf(" AND marital_status = ANY($%d)", argCount)
		args = append(args, pq.Array(filter.MaritalStatuses))
		argCount++
	}

	if filter.City != "" {
		where += fmt.Sprintf(" AND city ILIKE $%d", argCount)
		args = append(args, "%"+filter.City+"%")
		argCount++
	}

	if filter.State != "" {
		where += fmt.Sprintf(" AND state ILIKE $%d", argCount)
		args = append(args, "%"+filter.State+"%")
		argCount++
	}

	where += fmt.Sprintf(" AND age BETWEEN $%d AND $%d", argCount, argCount+1)
	args = append(args, filter.MinAge, filter.MaxAge)
	argCount += 2

	if len(filter.Educations) > 0 {
		patterns := make([]string, len(filter.Educations))
		for i, e := range filter.Educations {
			patterns[i] = "%" + e + "%"
		}
		where += fmt.Sprintf(" AND education ILIKE ANY($%d)", argCount)
		args = append(args, pq.Array(patterns))
		argCount++
	}

	if filter.ExcludeUserID != 0 {
		where += fmt.Sprintf(" AND user_id <> $%d", argCount)
		args = append(args, filter.ExcludeUserID)
		argCount++
	}

	if filter.OnlyPremium {
		where += " AND is_premium = true"
	}

	if filter.CreatedAfter != nil {
		where += fmt.Sprintf(" AND created_at >= $%d", argCount)
		args = append(args, *filter.CreatedAfter)
		argCount++
	}

	return where, args
}

func (r *profileRepository) Search(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]*domain.Profile, error) {
	filter.Normalize()
	where, args := buildFilter(filter)

	query := `SELECT * FROM profiles` + where
	query += fmt.Sprintf(" ORDER BY is_premium DESC, created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	profiles := []*domain.Profile{}
	err := r.db.SelectContext(ctx, &profiles, query, args...)
	return profiles, err
}

func (r *profileRepository) Count(ctx context.Context, filter domain.SearchFilter) (int, error) {
	filter.Normalize()
	where, args := buildFilter(filter)

	var total int
	err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM profiles`+where, args...)
	return total, err
}

func (r *profileRepository) IncrementViewCount(ctx context.Context, profileID int) error {
	query := `UPDATE profiles SET view_count = view_count + 1 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
