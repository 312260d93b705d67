package ports

import (
	"context"
	"time"
)

// ProfileViewInput is the DTO carried through the view-recorder queue.
type ProfileViewInput struct {
	ViewerID  string
	ProfileID string
	ViewedAt  time.Time
}

// ViewProcessor persists one profile view after deduplication. Called from
// the queue workers, never from request handlers directly.
type ViewProcessor interface {
	Process(ctx context.Context, view ProfileViewInput) error
}
