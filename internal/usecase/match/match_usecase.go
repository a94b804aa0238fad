package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

const (
	TypeAll         = "all"
	TypePremium     = "premium"
	TypeNew         = "new"
	TypeRecommended = "recommended"
)

const (
	newProfileWindow = 7 * 24 * time.Hour
	// recommendedPoolSize bounds how many candidates are scored before the
	// score-ordered page is cut.
	recommendedPoolSize = 200

	cacheTTL = time.Minute
)

// Cache stores serialized match listings for a short period.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type MatchUseCase struct {
	profileRepo repository.ProfileRepository
	prefRepo    repository.PreferenceRepository
	cache       Cache
	logger      *slog.Logger
}

func NewMatchUseCase(
	profileRepo repository.ProfileRepository,
	prefRepo repository.PreferenceRepository,
	cache Cache,
	logger *slog.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		profileRepo: profileRepo,
		prefRepo:    prefRepo,
		cache:       cache,
		logger:      logger,
	}
}

// MatchItem is one entry of a match listing.
type MatchItem struct {
	ID         int    `json:"id"`
	UserID     int    `json:"user_id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Location   string `json:"location"`
	Education  string `json:"education,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	MatchScore int    `json:"match_score"`
	Photo      string `json:"photo,omitempty"`
}

type MatchListResponse struct {
	Matches []MatchItem `json:"matches"`
	Total   int         `json:"total"`
}

// ListMatches returns candidate profiles for the requester: opposite gender,
// visible, never the requester. A requester without a profile is a
// precondition failure, not an empty result.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID int, matchType string, limit, offset int) (*MatchListResponse, error) {
	if matchType == "" {
		matchType = TypeAll
	}

	if resp, ok := uc.cacheGet(ctx, userID, matchType, limit, offset); ok {
		return resp, nil
	}

	requester, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pref, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrPreferenceNotFound) {
			return nil, err
		}
		pref = nil
	}

	filter := domain.SearchFilter{
		Gender:        domain.OppositeGender(requester.Gender),
		ExcludeUserID: userID,
	}
	switch matchType {
	case TypePremium:
		filter.OnlyPremium = true
	case TypeNew:
		since := time.Now().Add(-newProfileWindow)
		filter.CreatedAfter = &since
	}

	total, err := uc.profileRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count matches: %w", err)
	}

	var candidates []*domain.Profile
	if matchType == TypeRecommended {
		// Score ordering overrides the default premium/recency order, so the
		// page is cut after scoring a bounded candidate pool.
		pool, err := uc.profileRepo.Search(ctx, filter, recommendedPoolSize, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to search matches: %w", err)
		}
		sort.SliceStable(pool, func(i, j int) bool {
			return Score(pref, pool[i]) > Score(pref, pool[j])
		})
		candidates = page(pool, offset, limit)
	} else {
		candidates, err = uc.profileRepo.Search(ctx, filter, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to search matches: %w", err)
		}
	}

	items := make([]MatchItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, MatchItem{
			ID:         c.ID,
			UserID:     c.UserID,
			Name:       c.Name,
			Age:        c.Age,
			Location:   fmt.Sprintf("%s, %s", c.City, c.State),
			Education:  strValue(c.Education),
			Occupation: strValue(c.Occupation),
			MatchScore: Score(pref, c),
			Photo:      c.Photos.Primary(),
		})
	}

	resp := &MatchListResponse{Matches: items, Total: total}
	uc.cacheSet(ctx, userID, matchType, limit, offset, resp)
	return resp, nil
}

func page(profiles []*domain.Profile, offset, limit int) []*domain.Profile {
	if offset >= len(profiles) {
		return nil
	}
	end := offset + limit
	if end > len(profiles) {
		end = len(profiles)
	}
	return profiles[offset:end]
}

func cacheKey(userID int, matchType string, limit, offset int) string {
	return fmt.Sprintf("matches:%d:%s:%d:%d", userID, matchType, limit, offset)
}

func (uc *MatchUseCase) cacheGet(ctx context.Context, userID int, matchType string, limit, offset int) (*MatchListResponse, bool) {
	if uc.cache == nil {
		return nil, false
	}
	raw, err := uc.cache.Get(ctx, cacheKey(userID, matchType, limit, offset))
	if err != nil || raw == nil {
		return nil, false
	}
	var resp MatchListResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (uc *MatchUseCase) cacheSet(ctx context.Context, userID int, matchType string, limit, offset int, resp *MatchListResponse) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, cacheKey(userID, matchType, limit, offset), raw, cacheTTL); err != nil {
		uc.logger.Warn("match cache write failed", "user_id", userID, "error", err)
	}
}
