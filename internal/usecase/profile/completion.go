package profile

import "github.com/vivahsetu/matrimony-backend/internal/domain"

// CompletionPercent rates how filled-in a profile is, as a percentage of a
// fixed field checklist. Pure function over a profile snapshot; callers
// invoke it explicitly after any field update rather than relying on an
// implicit save hook.
func CompletionPercent(p *domain.Profile) int {
	checks := []bool{
		p.Name != "",
		p.Gender != "",
		!p.DateOfBirth.IsZero(),
		p.Religion != "",
		p.Caste != nil && *p.Caste != "",
		p.MotherTongue != nil && *p.MotherTongue != "",
		p.MaritalStatus != "",
		p.Education != nil && *p.Education != "",
		p.Occupation != nil && *p.Occupation != "",
		p.Country != "",
		p.State != "",
		p.City != "",
		p.About != nil && *p.About != "",
		p.Phone != nil && *p.Phone != "",
		len(p.Photos) > 0,
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	return filled * 100 / len(checks)
}
