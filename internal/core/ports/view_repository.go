package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// ViewRepository defines persistence for profile views.
type ViewRepository interface {
	Insert(ctx context.Context, v *domain.ProfileView) error
	// ListByViewer returns the viewer's most recent views, newest first,
	// capped at limit.
	ListByViewer(ctx context.Context, viewerID string, limit int) ([]*domain.ProfileView, error)
}
