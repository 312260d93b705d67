package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const viewDedupTTL = time.Hour

// ViewDedup suppresses repeated profile views within a window, backed by Redis.
// Key format: viewdedup:<viewer_id>:<profile_id>
type ViewDedup struct {
	client *redis.Client
}

// NewViewDedup creates a ViewDedup wrapping the given Redis client.
func NewViewDedup(client *redis.Client) *ViewDedup {
	return &ViewDedup{client: client}
}

// IsDuplicate reports whether this viewer already viewed the profile recently.
func (d *ViewDedup) IsDuplicate(ctx context.Context, viewerID, profileID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(viewerID, profileID)).Result()
	if err != nil {
		return false, fmt.Errorf("view dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this view has been counted (expires after viewDedupTTL).
func (d *ViewDedup) Mark(ctx context.Context, viewerID, profileID string) error {
	return d.client.Set(ctx, d.key(viewerID, profileID), "1", viewDedupTTL).Err()
}

func (d *ViewDedup) key(viewerID, profileID string) string {
	return fmt.Sprintf("viewdedup:%s:%s", viewerID, profileID)
}
