package preference

import (
	"context"
	"errors"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type PreferenceUseCase struct {
	prefRepo repository.PreferenceRepository
}

func NewPreferenceUseCase(prefRepo repository.PreferenceRepository) *PreferenceUseCase {
	return &PreferenceUseCase{prefRepo: prefRepo}
}

type UpsertPreferenceRequest struct {
	MinAge          int      `json:"min_age" binding:"omitempty,min=18,max=100"`
	MaxAge          int      `json:"max_age" binding:"omitempty,min=18,max=100,gtefield=MinAge"`
	MinHeight       *string  `json:"min_height" binding:"omitempty,max=10"`
	MaxHeight       *string  `json:"max_height" binding:"omitempty,max=10"`
	MaritalStatuses []string `json:"marital_statuses" binding:"omitempty,max=10,dive,oneof=never_married divorced widowed awaiting_divorce"`
	Religions       []string `json:"religions" binding:"omitempty,max=20"`
	Castes          []string `json:"castes" binding:"omitempty,max=20"`
	MotherTongues   []string `json:"mother_tongues" binding:"omitempty,max=20"`
	Educations      []string `json:"educations" binding:"omitempty,max=20"`
	Occupations     []string `json:"occupations" binding:"omitempty,max=20"`
	Countries       []string `json:"countries" binding:"omitempty,max=20"`
	States          []string `json:"states" binding:"omitempty,max=20"`
	Cities          []string `json:"cities" binding:"omitempty,max=20"`
}

// GetMyPreference returns the user's preference, or a default one when none
// has been saved yet.
func (uc *PreferenceUseCase) GetMyPreference(ctx context.Context, userID int) (*domain.Preference, error) {
	pref, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			return defaultPreference(userID), nil
		}
		return nil, err
	}
	return pref, nil
}

// UpsertPreference creates or replaces the user's preference. Empty arrays
// mean "no constraint on this dimension".
func (uc *PreferenceUseCase) UpsertPreference(ctx context.Context, userID int, req *UpsertPreferenceRequest) (*domain.Preference, error) {
	pref := &domain.Preference{
		UserID:          userID,
		MinAge:          req.MinAge,
		MaxAge:          req.MaxAge,
		MinHeight:       req.MinHeight,
		MaxHeight:       req.MaxHeight,
		MaritalStatuses: orEmpty(req.MaritalStatuses),
		Religions:       orEmpty(req.Religions),
		Castes:          orEmpty(req.Castes),
		MotherTongues:   orEmpty(req.MotherTongues),
		Educations:      orEmpty(req.Educations),
		Occupations:     orEmpty(req.Occupations),
		Countries:       orEmpty(req.Countries),
		States:          orEmpty(req.States),
		Cities:          orEmpty(req.Cities),
	}
	if pref.MinAge == 0 {
		pref.MinAge = domain.DefaultPrefMinAge
	}
	if pref.MaxAge == 0 {
		pref.MaxAge = domain.DefaultPrefMaxAge
	}

	if err := uc.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}

func defaultPreference(userID int) *domain.Preference {
	return &domain.Preference{
		UserID:          userID,
		MinAge:          domain.DefaultPrefMinAge,
		MaxAge:          domain.DefaultPrefMaxAge,
		MaritalStatuses: []string{},
		Religions:       []string{},
		Castes:          []string{},
		MotherTongues:   []string{},
		Educations:      []string{},
		Occupations:     []string{},
		Countries:       []string{},
		States:          []string{},
		Cities:          []string{},
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
