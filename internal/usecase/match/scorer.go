package match

import (
	"strings"

	"github.com/vivahsetu/matrimony-backend/internal/domain"
)

// NeutralScore is returned when no preference is available or no criteria
// overlap between the preference and the candidate.
const NeutralScore = 50

const maxScore = 100

const (
	ageWeight          = 15
	religionWeight     = 20
	maritalWeight      = 10
	educationWeight    = 15
	locationWeight     = 20
	motherTongueWeight = 10
	occupationWeight   = 10
)

// Score rates how well a candidate profile fits the given preference, on a
// 0-100 scale. Each criterion contributes only when the preference dimension
// is set and the candidate carries a value for it. Pure and deterministic.
func Score(pref *domain.Preference, candidate *domain.Profile) int {
	if pref == nil || candidate == nil {
		return NeutralScore
	}

	score := 0
	criteria := 0

	if pref.MinAge > 0 && pref.MaxAge > 0 && candidate.Age > 0 {
		criteria++
		score += ageScore(candidate.Age, pref.MinAge, pref.MaxAge)
	}

	if len(pref.Religions) > 0 && candidate.Religion != "" {
		criteria++
		if containsFold(pref.Religions, candidate.Religion) {
			score += religionWeight
		}
	}

	if len(pref.MaritalStatuses) > 0 && candidate.MaritalStatus != "" {
		criteria++
		// Exact match, marital statuses are canonical enum values.
		for _, s := range pref.MaritalStatuses {
			if s == candidate.MaritalStatus {
				score += maritalWeight
				break
			}
		}
	}

	if len(pref.Educations) > 0 && strValue(candidate.Education) != "" {
		criteria++
		if anySubstringFold(pref.Educations, *candidate.Education) {
			score += educationWeight
		}
	}

	if len(pref.Cities)+len(pref.States)+len(pref.Countries) > 0 {
		criteria++
		// Any one of the three location dimensions suffices.
		if containsFold(pref.Cities, candidate.City) ||
			containsFold(pref.States, candidate.State) ||
			containsFold(pref.Countries, candidate.Country) {
			score += locationWeight
		}
	}

	if len(pref.MotherTongues) > 0 && strValue(candidate.MotherTongue) != "" {
		criteria++
		if containsFold(pref.MotherTongues, *candidate.MotherTongue) {
			score += motherTongueWeight
		}
	}

	if len(pref.Occupations) > 0 && strValue(candidate.Occupation) != "" {
		criteria++
		if anySubstringFold(pref.Occupations, *candidate.Occupation) {
			score += occupationWeight
		}
	}

	if criteria == 0 {
		return NeutralScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// ageScore gives full credit inside the range and linear partial credit
// outside it, based on the distance to the nearer bound.
func ageScore(age, minAge, maxAge int) int {
	if age >= minAge && age <= maxAge {
		return ageWeight
	}
	var distance int
	if age < minAge {
		distance = minAge - age
	} else {
		distance = age - maxAge
	}
	credit := ageWeight - 2*distance
	if credit < 0 {
		return 0
	}
	return credit
}

func containsFold(set []string, value string) bool {
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func anySubstringFold(needles []string, haystack string) bool {
	lower := strings.ToLower(haystack)
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
