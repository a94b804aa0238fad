package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	MaritalNeverMarried    = "never_married"
	MaritalDivorced        = "divorced"
	MaritalWidowed         = "widowed"
	MaritalAwaitingDivorce = "awaiting_divorce"
)

const (
	VisibilityEveryone = "everyone"
	VisibilityMembers  = "members"
	VisibilityHidden   = "hidden"
)

type Photo struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	IsPrimary  bool      `json:"is_primary"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// PhotoList is stored as a JSONB column.
type PhotoList []Photo

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

func (p *PhotoList) Scan(src interface{}) error {
	if src == nil {
		*p = PhotoList{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type for PhotoList: %T", src)
	}
	return json.Unmarshal(b, p)
}

// Primary returns the primary photo URL, falling back to the first photo.
func (p PhotoList) Primary() string {
	for _, photo := range p {
		if photo.IsPrimary {
			return photo.URL
		}
	}
	if len(p) > 0 {
		return p[0].URL
	}
	return ""
}

type Profile struct {
	ID                int        `json:"id" db:"id"`
	UserID            int        `json:"user_id" db:"user_id"`
	Name              string     `json:"name" db:"name"`
	Gender            string     `json:"gender" db:"gender"`
	DateOfBirth       time.Time  `json:"date_of_birth" db:"date_of_birth"`
	Age               int        `json:"age" db:"age"`
	Religion          string     `json:"religion" db:"religion"`
	Caste             *string    `json:"caste" db:"caste"`
	MotherTongue      *string    `json:"mother_tongue" db:"mother_tongue"`
	MaritalStatus     string     `json:"marital_status" db:"marital_status"`
	Education         *string    `json:"education" db:"education"`
	Occupation        *string    `json:"occupation" db:"occupation"`
	Country           string     `json:"country" db:"country"`
	State             string     `json:"state" db:"state"`
	City              string     `json:"city" db:"city"`
	About             *string    `json:"about" db:"about"`
	Phone             *string    `json:"phone" db:"phone"`
	Photos            PhotoList  `json:"photos" db:"photos"`
	ProfileVisibility string     `json:"profile_visibility" db:"profile_visibility"`
	PhotoVisibility   string     `json:"photo_visibility" db:"photo_visibility"`
	PhoneVisibility   string     `json:"phone_visibility" db:"phone_visibility"`
	ViewCount         int        `json:"view_count" db:"view_count"`
	IsPremium         bool       `json:"is_premium" db:"is_premium"`
	PremiumExpiresAt  *time.Time `json:"premium_expires_at" db:"premium_expires_at"`
	Completion        int        `json:"completion" db:"completion"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// AgeAt computes full years between the date of birth and now. Age is derived,
// never set directly; callers recompute it on every persist.
func (p *Profile) AgeAt(now time.Time) int {
	years := now.Year() - p.DateOfBirth.Year()
	if now.YearDay() < p.DateOfBirth.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// OppositeGender returns the other binary gender for match listing.
func OppositeGender(gender string) string {
	if gender == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// ProfileCard is the minimal projection attached to interests, viewers and
// match listings.
type ProfileCard struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	City     string `json:"city"`
	PhotoURL string `json:"photo,omitempty"`
}

func (p *Profile) Card() ProfileCard {
	return ProfileCard{
		ID:       p.ID,
		UserID:   p.UserID,
		Name:     p.Name,
		Age:      p.Age,
		City:     p.City,
		PhotoURL: p.Photos.Primary(),
	}
}
