package match

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type fakeProfileRepo struct {
	requester  *domain.Profile
	pool       []*domain.Profile
	total      int
	lastFilter domain.SearchFilter
	searches   int
}

func (r *fakeProfileRepo) Create(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(_ context.Context, _ int) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	if r.requester != nil && r.requester.UserID == userID {
		return r.requester, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) Search(_ context.Context, filter domain.SearchFilter, limit, offset int) ([]*domain.Profile, error) {
	r.lastFilter = filter
	r.searches++
	end := offset + limit
	if offset > len(r.pool) {
		offset = len(r.pool)
	}
	if end > len(r.pool) {
		end = len(r.pool)
	}
	return r.pool[offset:end], nil
}

func (r *fakeProfileRepo) Count(_ context.Context, _ domain.SearchFilter) (int, error) {
	return r.total, nil
}

func (r *fakeProfileRepo) IncrementViewCount(_ context.Context, _ int) error { return nil }

type fakePrefRepo struct {
	pref *domain.Preference
}

func (r *fakePrefRepo) GetByUserID(_ context.Context, _ int) (*domain.Preference, error) {
	if r.pref == nil {
		return nil, domain.ErrPreferenceNotFound
	}
	return r.pref, nil
}

func (r *fakePrefRepo) Upsert(_ context.Context, _ *domain.Preference) error { return nil }

type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	return c.entries[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requester() *domain.Profile {
	return &domain.Profile{ID: 1, UserID: 10, Gender: domain.GenderMale, Age: 30}
}

func TestListMatchesRequiresProfile(t *testing.T) {
	uc := NewMatchUseCase(&fakeProfileRepo{}, &fakePrefRepo{}, nil, testLogger())

	_, err := uc.ListMatches(context.Background(), 10, TypeAll, 20, 0)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestListMatchesFixedPredicate(t *testing.T) {
	profileRepo := &fakeProfileRepo{requester: requester()}
	uc := NewMatchUseCase(profileRepo, &fakePrefRepo{}, nil, testLogger())
	ctx := context.Background()

	_, err := uc.ListMatches(ctx, 10, TypeAll, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.GenderFemale, profileRepo.lastFilter.Gender)
	assert.Equal(t, 10, profileRepo.lastFilter.ExcludeUserID)
	assert.False(t, profileRepo.lastFilter.OnlyPremium)
	assert.Nil(t, profileRepo.lastFilter.CreatedAfter)

	_, err = uc.ListMatches(ctx, 10, TypePremium, 20, 0)
	require.NoError(t, err)
	assert.True(t, profileRepo.lastFilter.OnlyPremium)

	_, err = uc.ListMatches(ctx, 10, TypeNew, 20, 0)
	require.NoError(t, err)
	require.NotNil(t, profileRepo.lastFilter.CreatedAfter)
	assert.WithinDuration(t, time.Now().Add(-newProfileWindow), *profileRepo.lastFilter.CreatedAfter, time.Minute)
}

func TestListMatchesRecommendedOrdersByScore(t *testing.T) {
	pref := &domain.Preference{MinAge: 25, MaxAge: 30, Religions: []string{"hindu"}}
	weak := &domain.Profile{ID: 2, UserID: 20, Name: "A", Age: 45, Gender: domain.GenderFemale, Religion: "Jain"}
	strong := &domain.Profile{ID: 3, UserID: 30, Name: "B", Age: 27, Gender: domain.GenderFemale, Religion: "Hindu"}
	mid := &domain.Profile{ID: 4, UserID: 40, Name: "C", Age: 27, Gender: domain.GenderFemale, Religion: "Jain"}

	profileRepo := &fakeProfileRepo{
		requester: requester(),
		pool:      []*domain.Profile{weak, mid, strong},
		total:     3,
	}
	uc := NewMatchUseCase(profileRepo, &fakePrefRepo{pref: pref}, nil, testLogger())

	resp, err := uc.ListMatches(context.Background(), 10, TypeRecommended, 10, 0)
	require.NoError(t, err)
	require.Len(t, resp.Matches, 3)
	assert.Equal(t, "B", resp.Matches[0].Name)
	assert.Equal(t, "C", resp.Matches[1].Name)
	assert.Equal(t, "A", resp.Matches[2].Name)
	assert.Greater(t, resp.Matches[0].MatchScore, resp.Matches[1].MatchScore)
}

func TestListMatchesRecommendedPagination(t *testing.T) {
	pool := make([]*domain.Profile, 0, 5)
	for i := 0; i < 5; i++ {
		pool = append(pool, &domain.Profile{
			ID: i + 2, UserID: 20 + i, Age: 26, Gender: domain.GenderFemale,
		})
	}
	profileRepo := &fakeProfileRepo{requester: requester(), pool: pool, total: 5}
	uc := NewMatchUseCase(profileRepo, &fakePrefRepo{}, nil, testLogger())

	resp, err := uc.ListMatches(context.Background(), 10, TypeRecommended, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Total)
	assert.Len(t, resp.Matches, 1)
}

func TestListMatchesUsesCache(t *testing.T) {
	profileRepo := &fakeProfileRepo{
		requester: requester(),
		pool:      []*domain.Profile{{ID: 2, UserID: 20, Name: "A", Age: 27, Gender: domain.GenderFemale}},
		total:     1,
	}
	cache := newMemoryCache()
	uc := NewMatchUseCase(profileRepo, &fakePrefRepo{}, cache, testLogger())
	ctx := context.Background()

	first, err := uc.ListMatches(ctx, 10, TypeAll, 20, 0)
	require.NoError(t, err)
	require.Equal(t, 1, profileRepo.searches)

	// Second call is served from cache without touching the store.
	second, err := uc.ListMatches(ctx, 10, TypeAll, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, profileRepo.searches)
	assert.Equal(t, first.Total, second.Total)
	require.Len(t, second.Matches, 1)
	assert.Equal(t, first.Matches[0].Name, second.Matches[0].Name)
}
