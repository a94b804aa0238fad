package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

type fakeProfileRepo struct {
	lastFilter domain.SearchFilter
	lastLimit  int
	lastOffset int
	results    []*domain.Profile
	total      int
}

func (r *fakeProfileRepo) Create(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(_ context.Context, _ int) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, _ int) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) Search(_ context.Context, filter domain.SearchFilter, limit, offset int) ([]*domain.Profile, error) {
	r.lastFilter = filter
	r.lastLimit = limit
	r.lastOffset = offset
	return r.results, nil
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

func candidates(n int) []*domain.Profile {
	out := make([]*domain.Profile, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &domain.Profile{
			ID:       i + 1,
			UserID:   100 + i,
			Age:      25 + i,
			Gender:   domain.GenderFemale,
			Religion: "Hindu",
			City:     "Mumbai",
		})
	}
	return out
}

func TestSearchPaginationInvariant(t *testing.T) {
	profileRepo := &fakeProfileRepo{results: candidates(10), total: 45}
	uc := NewSearchUseCase(profileRepo, &fakePrefRepo{})

	resp, err := uc.Search(context.Background(), &SearchRequest{Limit: 10, Skip: 20}, nil)
	require.NoError(t, err)
	assert.Equal(t, 45, resp.Total)
	assert.Len(t, resp.Profiles, 10)
	// has_more == (skip + returned < total)
	assert.True(t, resp.HasMore)

	profileRepo.results = candidates(5)
	resp, err = uc.Search(context.Background(), &SearchRequest{Limit: 10, Skip: 40}, nil)
	require.NoError(t, err)
	assert.False(t, resp.HasMore)
}

func TestSearchDefaultAndMaxLimit(t *testing.T) {
	profileRepo := &fakeProfileRepo{}
	uc := NewSearchUseCase(profileRepo, &fakePrefRepo{})
	ctx := context.Background()

	_, err := uc.Search(ctx, &SearchRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, profileRepo.lastLimit)

	_, err = uc.Search(ctx, &SearchRequest{Limit: 5000}, nil)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, profileRepo.lastLimit)
}

func TestSearchExcludesRequester(t *testing.T) {
	profileRepo := &fakeProfileRepo{}
	uc := NewSearchUseCase(profileRepo, &fakePrefRepo{})
	actor := &domain.Actor{UserID: 42}

	_, err := uc.Search(context.Background(), &SearchRequest{}, actor)
	require.NoError(t, err)
	assert.Equal(t, 42, profileRepo.lastFilter.ExcludeUserID)

	// Anonymous searches exclude nobody.
	_, err = uc.Search(context.Background(), &SearchRequest{}, nil)
	require.NoError(t, err)
	assert.Zero(t, profileRepo.lastFilter.ExcludeUserID)
}

func TestSearchScoreAnnotation(t *testing.T) {
	pref := &domain.Preference{MinAge: 25, MaxAge: 35, Religions: []string{"hindu"}}
	profileRepo := &fakeProfileRepo{results: candidates(1), total: 1}
	uc := NewSearchUseCase(profileRepo, &fakePrefRepo{pref: pref})
	ctx := context.Background()

	// Authenticated: score attached, computed from the requester preference.
	resp, err := uc.Search(ctx, &SearchRequest{}, &domain.Actor{UserID: 42})
	require.NoError(t, err)
	require.Len(t, resp.Profiles, 1)
	require.NotNil(t, resp.Profiles[0].MatchScore)
	assert.Equal(t, 35, *resp.Profiles[0].MatchScore)

	// Anonymous: no score.
	resp, err = uc.Search(ctx, &SearchRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Profiles, 1)
	assert.Nil(t, resp.Profiles[0].MatchScore)
}

func TestSearchFilterMapping(t *testing.T) {
	profileRepo := &fakeProfileRepo{}
	uc := NewSearchUseCase(profileRepo, &fakePrefRepo{})

	req := &SearchRequest{
		Gender:          domain.GenderFemale,
		AgeRange:        &AgeRange{Min: 24, Max: 32},
		Religions:       []string{"Hindu"},
		City:            "mum",
		MaritalStatuses: []string{domain.MaritalNeverMarried},
	}
	_, err := uc.Search(context.Background(), req, nil)
	require.NoError(t, err)

	f := profileRepo.lastFilter
	assert.Equal(t, domain.GenderFemale, f.Gender)
	assert.Equal(t, 24, f.MinAge)
	assert.Equal(t, 32, f.MaxAge)
	assert.Equal(t, []string{"Hindu"}, f.Religions)
	assert.Equal(t, "mum", f.City)
	assert.Equal(t, []string{domain.MaritalNeverMarried}, f.MaritalStatuses)
}
