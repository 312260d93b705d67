package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// RatingRepository defines persistence for ratings. Upsert keys on
// (target, target_id, rater_id) so a rater can revise their score.
type RatingRepository interface {
	Upsert(ctx context.Context, r *domain.Rating) (*domain.Rating, error)
	ListByTarget(ctx context.Context, target domain.RatingTarget, targetID string) ([]*domain.Rating, error)
	// ListByTargets fetches ratings for a batch of targets in one query,
	// grouped by target id. Used to enrich search results.
	ListByTargets(ctx context.Context, target domain.RatingTarget, targetIDs []string) (map[string][]*domain.Rating, error)
}
