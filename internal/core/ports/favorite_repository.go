package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// FavoriteRepository defines persistence for professional bookmarks.
type FavoriteRepository interface {
	// Upsert creates the favorite if missing and returns the stored row either way.
	Upsert(ctx context.Context, userID, professionalID string) (*domain.Favorite, error)
	// Delete removes the favorite; deleting a missing favorite is a no-op.
	Delete(ctx context.Context, userID, professionalID string) error
	// ListByUser returns the user's favorites, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
}
