package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// EstablishmentFilter carries the exact-match filters pushed into the
// establishments query.
type EstablishmentFilter struct {
	CategoryID string // optional
}

// EstablishmentRepository defines persistence operations for establishments.
type EstablishmentRepository interface {
	Create(ctx context.Context, e *domain.Establishment) (*domain.Establishment, error)
	FindByID(ctx context.Context, id string) (*domain.Establishment, error)
	Update(ctx context.Context, e *domain.Establishment) error
	// List returns establishments matching filter in storage order.
	List(ctx context.Context, filter EstablishmentFilter) ([]*domain.Establishment, error)
	Count(ctx context.Context) (int64, error)
}

// CatalogRepository serves the category and plan reference tables.
type CatalogRepository interface {
	// ListCategories returns categories ordered by name, optionally filtered
	// by type ("" = all).
	ListCategories(ctx context.Context, categoryType domain.CategoryType) ([]*domain.Category, error)
	FindCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	// ListActivePlans returns active plans ordered by price ascending.
	ListActivePlans(ctx context.Context) ([]*domain.Plan, error)
	FindPlan(ctx context.Context, id string) (*domain.Plan, error)
	CreatePlan(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, p *domain.Plan) error
}
