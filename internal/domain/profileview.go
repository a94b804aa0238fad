package domain

import "time"

// ProfileView is a directed edge viewer -> viewed profile, unique per pair.
type ProfileView struct {
	ID              int       `json:"id" db:"id"`
	ViewerID        int       `json:"viewer_id" db:"viewer_id"`
	ViewedProfileID int       `json:"viewed_profile_id" db:"viewed_profile_id"`
	ViewedAt        time.Time `json:"viewed_at" db:"viewed_at"`
}
