package domain

import "time"

const (
	DefaultPrefMinAge = 18
	DefaultPrefMaxAge = 40
)

// Preference holds a user's desired-partner criteria. Empty slices mean
// "no constraint on this dimension".
type Preference struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"user_id" db:"user_id"`
	MinAge          int       `json:"min_age" db:"min_age"`
	MaxAge          int       `json:"max_age" db:"max_age"`
	MinHeight       *string   `json:"min_height" db:"min_height"`
	MaxHeight       *string   `json:"max_height" db:"max_height"`
	MaritalStatuses []string  `json:"marital_statuses" db:"marital_statuses"`
	Religions       []string  `json:"religions" db:"religions"`
	Castes          []string  `json:"castes" db:"castes"`
	MotherTongues   []string  `json:"mother_tongues" db:"mother_tongues"`
	Educations      []string  `json:"educations" db:"educations"`
	Occupations     []string  `json:"occupations" db:"occupations"`
	Countries       []string  `json:"countries" db:"countries"`
	States          []string  `json:"states" db:"states"`
	Cities          []string  `json:"cities" db:"cities"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
