package profileview

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

type fakeViewRepo struct {
	views  []*domain.ProfileView
	nextID int
}

func (r *fakeViewRepo) Create(_ context.Context, view *domain.ProfileView) error {
	for _, v := range r.views {
		if v.ViewerID == view.ViewerID && v.ViewedProfileID == view.ViewedProfileID {
			return domain.ErrViewAlreadyRecorded
		}
	}
	r.nextID++
	view.ID = r.nextID
	view.ViewedAt = time.Now()
	r.views = append(r.views, view)
	return nil
}

func (r *fakeViewRepo) ListByProfile(_ context.Context, profileID int, limit, offset int) ([]*domain.ProfileView, error) {
	var out []*domain.ProfileView
	for _, v := range r.views {
		if v.ViewedProfileID == profileID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[int]*domain.Profile // keyed by profile ID
}

func newFakeProfileRepo(profiles ...*domain.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: map[int]*domain.Profile{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(_ context.Context, id int) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID int) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) Search(_ context.Context, _ domain.SearchFilter, _, _ int) ([]*domain.Profile, error) {
	return nil, nil
}

func (r *fakeProfileRepo) Count(_ context.Context, _ domain.SearchFilter) (int, error) {
	return 0, nil
}

func (r *fakeProfileRepo) IncrementViewCount(_ context.Context, profileID int) error {
	p, ok := r.profiles[profileID]
	if !ok {
		return domain.ErrProfileNotFound
	}
	p.ViewCount++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrackViewFirstTime(t *testing.T) {
	owner := &domain.Profile{ID: 2, UserID: 20, Name: "Priya"}
	profileRepo := newFakeProfileRepo(owner)
	uc := NewProfileViewUseCase(&fakeViewRepo{}, profileRepo, testLogger())

	recorded, err := uc.TrackView(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.True(t, recorded)
	assert.Equal(t, 1, owner.ViewCount)
}

func TestTrackViewSelfIsNoOp(t *testing.T) {
	owner := &domain.Profile{ID: 2, UserID: 20}
	viewRepo := &fakeViewRepo{}
	uc := NewProfileViewUseCase(viewRepo, newFakeProfileRepo(owner), testLogger())

	recorded, err := uc.TrackView(context.Background(), 20, 2)
	require.NoError(t, err)
	assert.False(t, recorded)
	assert.Empty(t, viewRepo.views)
	assert.Equal(t, 0, owner.ViewCount)
}

func TestTrackViewDuplicateIsIdempotent(t *testing.T) {
	owner := &domain.Profile{ID: 2, UserID: 20}
	uc := NewProfileViewUseCase(&fakeViewRepo{}, newFakeProfileRepo(owner), testLogger())
	ctx := context.Background()

	recorded, err := uc.TrackView(ctx, 10, 2)
	require.NoError(t, err)
	assert.True(t, recorded)

	// The repeat view succeeds but records nothing and the counter stays put.
	recorded, err = uc.TrackView(ctx, 10, 2)
	require.NoError(t, err)
	assert.False(t, recorded)
	assert.Equal(t, 1, owner.ViewCount)
}

func TestTrackViewUnknownProfile(t *testing.T) {
	uc := NewProfileViewUseCase(&fakeViewRepo{}, newFakeProfileRepo(), testLogger())

	_, err := uc.TrackView(context.Background(), 10, 99)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestListViewers(t *testing.T) {
	owner := &domain.Profile{ID: 2, UserID: 20}
	viewer := &domain.Profile{ID: 1, UserID: 10, Name: "Arjun", Age: 30, City: "Pune"}
	uc := NewProfileViewUseCase(&fakeViewRepo{}, newFakeProfileRepo(owner, viewer), testLogger())
	ctx := context.Background()

	_, err := uc.TrackView(ctx, 10, 2)
	require.NoError(t, err)

	viewers, err := uc.ListViewers(ctx, 20, 20, 0)
	require.NoError(t, err)
	require.Len(t, viewers, 1)
	assert.Equal(t, "Arjun", viewers[0].Profile.Name)
	assert.False(t, viewers[0].ViewedAt.IsZero())
}
