package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// ProfessionalFilter carries the exact-match filters pushed into the
// professionals query. Plan, radius, and rating filters are applied
// post-fetch by the service layer.
type ProfessionalFilter struct {
	CategoryID string // optional
	Gender     string // optional
	Active     *bool  // optional; nil = no filter
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListProfessionals returns professional users matching filter in storage
	// order (no relevance sort).
	ListProfessionals(ctx context.Context, filter ProfessionalFilter) ([]*domain.User, error)
	// SetOnline persists the presence flag on the user record.
	SetOnline(ctx context.Context, userID string, online bool) error
	SetActive(ctx context.Context, userID string, active bool) error
	Count(ctx context.Context) (int64, error)
}
