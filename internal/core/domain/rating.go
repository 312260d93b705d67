package domain

import (
	"errors"
	"time"
)

// RatingTarget identifies which directory entity a rating applies to.
type RatingTarget string

const (
	RatingProfessional  RatingTarget = "professional"
	RatingEstablishment RatingTarget = "establishment"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Rating is a 1-5 score left by a client. One rating per (target, rater) pair;
// re-rating overwrites the previous score.
type Rating struct {
	ID        string       `json:"id"`
	Target    RatingTarget `json:"target"`
	TargetID  string       `json:"target_id"`
	RaterID   string       `json:"rater_id"`
	Score     int          `json:"score"`
	Comment   string       `json:"comment,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
