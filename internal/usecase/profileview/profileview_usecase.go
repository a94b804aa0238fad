package profileview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type ProfileViewUseCase struct {
	viewRepo    repository.ProfileViewRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

func NewProfileViewUseCase(
	viewRepo repository.ProfileViewRepository,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) *ProfileViewUseCase {
	return &ProfileViewUseCase{
		viewRepo:    viewRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// TrackView records that viewer looked at a profile. Self-views and repeat
// views are no-op successes; only the first view by a given viewer bumps the
// profile's view counter. Returns whether a new view was recorded.
func (uc *ProfileViewUseCase) TrackView(ctx context.Context, viewerID, profileID int) (bool, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return false, err
	}

	if profile.UserID == viewerID {
		return false, nil
	}

	view := &domain.ProfileView{
		ViewerID:        viewerID,
		ViewedProfileID: profileID,
	}
	if err := uc.viewRepo.Create(ctx, view); err != nil {
		if errors.Is(err, domain.ErrViewAlreadyRecorded) {
			return false, nil
		}
		return false, fmt.Errorf("failed to record profile view: %w", err)
	}

	// The counter rides behind the unique insert; a failed increment is
	// logged, not surfaced.
	if err := uc.profileRepo.IncrementViewCount(ctx, profileID); err != nil {
		uc.logger.Error("failed to increment view counter", "profile_id", profileID, "error", err)
	}

	return true, nil
}

// ViewerItem joins a view record with the viewer's profile card.
type ViewerItem struct {
	Profile  *domain.ProfileCard `json:"profile"`
	ViewedAt time.Time           `json:"viewed_at"`
}

// ListViewers returns who viewed the owner's profile, newest first.
func (uc *ProfileViewUseCase) ListViewers(ctx context.Context, ownerUserID int, limit, offset int) ([]*ViewerItem, error) {
	ownerProfile, err := uc.profileRepo.GetByUserID(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	views, err := uc.viewRepo.ListByProfile(ctx, ownerProfile.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile views: %w", err)
	}

	items := make([]*ViewerItem, 0, len(views))
	for _, v := range views {
		viewerProfile, err := uc.profileRepo.GetByUserID(ctx, v.ViewerID)
		if err != nil {
			continue
		}
		card := viewerProfile.Card()
		items = append(items, &ViewerItem{
			Profile:  &card,
			ViewedAt: v.ViewedAt,
		})
	}

	return items, nil
}
