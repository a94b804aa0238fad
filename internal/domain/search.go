package domain

import "time"

// SearchFilter describes the candidate predicate for profile search and match
// listing. Zero values and empty slices leave the dimension unconstrained.
// Hidden profiles are always excluded regardless of the filter.
type SearchFilter struct {
	Gender          string
	Religions       []string
	MaritalStatuses []string
	City            string
	State           string
	MinAge          int
	MaxAge          int
	Educations      []string
	ExcludeUserID   int
	OnlyPremium     bool
	CreatedAfter    *time.Time
}

const (
	SearchMinAgeFloor   = 18
	SearchMaxAgeCeiling = 100
)

// Normalize applies the default age bounds.
func (f *SearchFilter) Normalize() {
	if f.MinAge <= 0 {
		f.MinAge = SearchMinAgeFloor
	}
	if f.MaxAge <= 0 {
		f.MaxAge = SearchMaxAgeCeiling
	}
}
