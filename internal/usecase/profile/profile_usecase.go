package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vivahsetu/matrimony-backend/internal/domain"
	"github.com/vivahsetu/matrimony-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// CreateProfileRequest carries onboarding input. Location and religion are
// required up front; registration never fills them with placeholders.
type CreateProfileRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=100"`
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	DateOfBirth   string  `json:"date_of_birth" binding:"required,beforetoday"`
	Religion      string  `json:"religion" binding:"required,max=50"`
	Caste         *string `json:"caste" binding:"omitempty,max=50"`
	MotherTongue  *string `json:"mother_tongue" binding:"omitempty,max=50"`
	MaritalStatus string  `json:"marital_status" binding:"required,oneof=never_married divorced widowed awaiting_divorce"`
	Education     *string `json:"education" binding:"omitempty,max=100"`
	Occupation    *string `json:"occupation" binding:"omitempty,max=100"`
	Country       string  `json:"country" binding:"required,max=50"`
	State         string  `json:"state" binding:"required,max=50"`
	City          string  `json:"city" binding:"required,max=50"`
	About         *string `json:"about" binding:"omitempty,max=1000"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
}

type UpdateProfileRequest struct {
	Name              *string  `json:"name" binding:"omitempty,min=2,max=100"`
	Religion          *string  `json:"religion" binding:"omitempty,max=50"`
	Caste             *string  `json:"caste" binding:"omitempty,max=50"`
	MotherTongue      *string  `json:"mother_tongue" binding:"omitempty,max=50"`
	MaritalStatus     *string  `json:"marital_status" binding:"omitempty,oneof=never_married divorced widowed awaiting_divorce"`
	Education         *string  `json:"education" binding:"omitempty,max=100"`
	Occupation        *string  `json:"occupation" binding:"omitempty,max=100"`
	Country           *string  `json:"country" binding:"omitempty,max=50"`
	State             *string  `json:"state" binding:"omitempty,max=50"`
	City              *string  `json:"city" binding:"omitempty,max=50"`
	About             *string  `json:"about" binding:"omitempty,max=1000"`
	Phone             *string  `json:"phone" binding:"omitempty,max=20"`
	ProfileVisibility *string  `json:"profile_visibility" binding:"omitempty,oneof=everyone members hidden"`
	PhotoVisibility   *string  `json:"photo_visibility" binding:"omitempty,oneof=everyone members hidden"`
	PhoneVisibility   *string  `json:"phone_visibility" binding:"omitempty,oneof=everyone members hidden"`
	Photos            []string `json:"photos" binding:"omitempty,max=10,dive,url"`
	PrimaryPhotoID    *string  `json:"primary_photo_id" binding:"omitempty,uuid"`
}

const dateLayout = "2006-01-02"

// CreateProfile creates the user's profile during onboarding. One profile per
// user; age and completion are derived on write.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userID int, req *CreateProfileRequest) (*domain.Profile, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}

	profile := &domain.Profile{
		UserID:            userID,
		Name:              req.Name,
		Gender:            req.Gender,
		DateOfBirth:       dob,
		Religion:          req.Religion,
		Caste:             req.Caste,
		MotherTongue:      req.MotherTongue,
		MaritalStatus:     req.MaritalStatus,
		Education:         req.Education,
		Occupation:        req.Occupation,
		Country:           req.Country,
		State:             req.State,
		City:              req.City,
		About:             req.About,
		Phone:             req.Phone,
		Photos:            domain.PhotoList{},
		ProfileVisibility: domain.VisibilityEveryone,
		PhotoVisibility:   domain.VisibilityMembers,
		PhoneVisibility:   domain.VisibilityMembers,
	}
	profile.Age = profile.AgeAt(time.Now())
	profile.Completion = CompletionPercent(profile)

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile applies partial updates, then recomputes age and completion
// before persisting.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Religion != nil {
		profile.Religion = *req.Religion
	}
	if req.Caste != nil {
		profile.Caste = req.Caste
	}
	if req.MotherTongue != nil {
		profile.MotherTongue = req.MotherTongue
	}
	if req.MaritalStatus != nil {
		profile.MaritalStatus = *req.MaritalStatus
	}
	if req.Education != nil {
		profile.Education = req.Education
	}
	if req.Occupation != nil {
		profile.Occupation = req.Occupation
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.State != nil {
		profile.State = *req.State
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.About != nil {
		profile.About = req.About
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.ProfileVisibility != nil {
		profile.ProfileVisibility = *req.ProfileVisibility
	}
	if req.PhotoVisibility != nil {
		profile.PhotoVisibility = *req.PhotoVisibility
	}
	if req.PhoneVisibility != nil {
		profile.PhoneVisibility = *req.PhoneVisibility
	}
	if req.Photos != nil {
		profile.Photos = mergePhotos(profile.Photos, req.Photos)
	}
	if req.PrimaryPhotoID != nil {
		setPrimaryPhoto(profile.Photos, *req.PrimaryPhotoID)
	}

	profile.Age = profile.AgeAt(time.Now())
	profile.Completion = CompletionPercent(profile)

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// mergePhotos keeps existing photo entries whose URL is still listed and
// appends new URLs with fresh IDs, preserving the submitted order.
func mergePhotos(existing domain.PhotoList, urls []string) domain.PhotoList {
	byURL := make(map[string]domain.Photo, len(existing))
	for _, p := range existing {
		byURL[p.URL] = p
	}

	merged := make(domain.PhotoList, 0, len(urls))
	for _, url := range urls {
		if p, ok := byURL[url]; ok {
			merged = append(merged, p)
			continue
		}
		merged = append(merged, domain.Photo{
			ID:         uuid.NewString(),
			URL:        url,
			UploadedAt: time.Now(),
		})
	}

	// Keep at most one primary after the merge.
	if len(merged) > 0 && merged.Primary() == "" {
		merged[0].IsPrimary = true
	}
	return merged
}

// setPrimaryPhoto marks the photo with the given ID primary and clears the
// flag on all others.
func setPrimaryPhoto(photos domain.PhotoList, photoID string) {
	for i := range photos {
		photos[i].IsPrimary = photos[i].ID == photoID
	}
}

// ProfileDetail is the single-profile payload with visibility applied.
type ProfileDetail struct {
	*domain.Profile
	Phone  *string          `json:"phone"`
	Photos domain.PhotoList `json:"photos"`
}

// GetProfileDetail fetches one profile and applies the visibility and
// ownership rules: hidden profiles are only visible to their owner, and
// phone/photos honor their per-field visibility settings.
func (uc *ProfileUseCase) GetProfileDetail(ctx context.Context, profileID int, actor *domain.Actor) (*ProfileDetail, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	isOwner := actor != nil && actor.UserID == profile.UserID
	if profile.ProfileVisibility == domain.VisibilityHidden && !isOwner {
		return nil, domain.ErrProfileNotFound
	}

	detail := &ProfileDetail{
		Profile: profile,
		Phone:   profile.Phone,
		Photos:  profile.Photos,
	}
	if !isOwner {
		if !visibleTo(profile.PhoneVisibility, actor) {
			detail.Phone = nil
		}
		if !visibleTo(profile.PhotoVisibility, actor) {
			detail.Photos = domain.PhotoList{}
		}
	}
	return detail, nil
}

func visibleTo(visibility string, actor *domain.Actor) bool {
	switch visibility {
	case domain.VisibilityEveryone:
		return true
	case domain.VisibilityMembers:
		return actor != nil
	default:
		return false
	}
}

// ValidateDateOfBirth is the "beforetoday" binding rule: a parseable date
// strictly in the past.
func ValidateDateOfBirth(value string) bool {
	dob, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	return dob.Before(time.Now())
}
