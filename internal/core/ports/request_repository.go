package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// RequestFilter scopes a service-request listing to one side of the
// relationship, optionally narrowed by status.
type RequestFilter struct {
	ClientID       string               // either ClientID or ProfessionalID is set
	ProfessionalID string               //
	Status         domain.RequestStatus // optional
}

// RequestRepository defines persistence for service requests.
type RequestRepository interface {
	Create(ctx context.Context, r *domain.ServiceRequest) (*domain.ServiceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	// List returns requests matching filter, newest first.
	List(ctx context.Context, filter RequestFilter) ([]*domain.ServiceRequest, error)
	Update(ctx context.Context, r *domain.ServiceRequest) error
}
