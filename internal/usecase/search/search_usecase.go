package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
	"github.com/vivahsetu/matrimony-backend/internal/usecase/match"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type SearchUseCase struct {
	profileRepo repository.ProfileRepository
	prefRepo    repository.PreferenceRepository
}

func NewSearchUseCase(
	profileRepo repository.ProfileRepository,
	prefRepo repository.PreferenceRepository,
) *SearchUseCase {
	return &SearchUseCase{
		profileRepo: profileRepo,
		prefRepo:    prefRepo,
	}
}

type AgeRange struct {
	Min int `json:"min" binding:"omitempty,min=18,max=100"`
	Max int `json:"max" binding:"omitempty,min=18,max=100"`
}

// SearchRequest carries the explicit search filters; absent fields leave the
// dimension unconstrained.
type SearchRequest struct {
	Gender          string    `json:"gender" binding:"omitempty,oneof=male female"`
	AgeRange        *AgeRange `json:"age_range" binding:"omitempty"`
	Religions       []string  `json:"religion" binding:"omitempty,max=20"`
	City            string    `json:"city" binding:"omitempty,max=100"`
	State           string    `json:"state" binding:"omitempty,max=100"`
	MaritalStatuses []string  `json:"marital_status" binding:"omitempty,max=10,dive,oneof=never_married divorced widowed awaiting_divorce"`
	Educations      []string  `json:"education" binding:"omitempty,max=20"`
	Limit           int       `json:"limit" binding:"omitempty,min=1,max=100"`
	Skip            int       `json:"skip" binding:"omitempty,min=0"`
}

// SearchProfile is the list-view payload. Phone and about are never included
// here regardless of visibility settings.
type SearchProfile struct {
	ID            int              `json:"id"`
	UserID        int              `json:"user_id"`
	Name          string           `json:"name"`
	Gender        string           `json:"gender"`
	Age           int              `json:"age"`
	Religion      string           `json:"religion"`
	MaritalStatus string           `json:"marital_status"`
	Education     *string          `json:"education"`
	Occupation    *string          `json:"occupation"`
	Country       string           `json:"country"`
	State         string           `json:"state"`
	City          string           `json:"city"`
	Photos        domain.PhotoList `json:"photos"`
	IsPremium     bool             `json:"is_premium"`
	MatchScore    *int             `json:"match_score,omitempty"`
}

type SearchResponse struct {
	Profiles []SearchProfile `json:"profiles"`
	Total    int             `json:"total"`
	HasMore  bool            `json:"has_more"`
}

// Search runs the filtered, paginated candidate query. When the requester is
// authenticated their own profile is excluded and every result is annotated
// with a compatibility score against their stored preference.
func (uc *SearchUseCase) Search(ctx context.Context, req *SearchRequest, actor *domain.Actor) (*SearchResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	filter := domain.SearchFilter{
		Gender:          req.Gender,
		Religions:       req.Religions,
		MaritalStatuses: req.MaritalStatuses,
		City:            req.City,
		State:           req.State,
		Educations:      req.Educations,
	}
	if req.AgeRange != nil {
		filter.MinAge = req.AgeRange.Min
		filter.MaxAge = req.AgeRange.Max
	}

	var pref *domain.Preference
	if actor != nil {
		filter.ExcludeUserID = actor.UserID

		p, err := uc.prefRepo.GetByUserID(ctx, actor.UserID)
		if err != nil && !errors.Is(err, domain.ErrPreferenceNotFound) {
			return nil, err
		}
		pref = p
	}

	profiles, err := uc.profileRepo.Search(ctx, filter, limit, req.Skip)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	total, err := uc.profileRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	results := make([]SearchProfile, 0, len(profiles))
	for _, p := range profiles {
		item := SearchProfile{
			ID:            p.ID,
			UserID:        p.UserID,
			Name:          p.Name,
			Gender:        p.Gender,
			Age:           p.Age,
			Religion:      p.Religion,
			MaritalStatus: p.MaritalStatus,
			Education:     p.Education,
			Occupation:    p.Occupation,
			Country:       p.Country,
			State:         p.State,
			City:          p.City,
			Photos:        p.Photos,
			IsPremium:     p.IsPremium,
		}
		if actor != nil {
			score := match.Score(pref, p)
			item.MatchScore = &score
		}
		results = append(results, item)
	}

	return &SearchResponse{
		Profiles: results,
		Total:    total,
		HasMore:  req.Skip+len(results) < total,
	}, nil
}
