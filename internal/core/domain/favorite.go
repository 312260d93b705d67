package domain

import "time"

// Favorite bookmarks a professional for a user. At most one per pair.
type Favorite struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	ProfessionalID string    `json:"professional_id"`
	CreatedAt      time.Time `json:"created_at"`
}
