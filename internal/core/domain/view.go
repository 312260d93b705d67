package domain

import "time"

// ProfileView records that one user opened another user's profile.
type ProfileView struct {
	ID        string    `json:"id"`
	ViewerID  string    `json:"viewer_id"`
	ProfileID string    `json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}
