package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// SearchInput carries all directory search parameters. Lat/Lng/RangeKm and
// MinRating are optional; nil disables the corresponding filter.
type SearchInput struct {
	Lat        *float64
	Lng        *float64
	RangeKm    *float64
	MinRating  *float64
	Gender     string // professionals only
	PlanTier   string // professionals only
	CategoryID string
	Active     *bool // professionals only
}

// ProfessionalEntry is a directory search result row. Distance and Rating are
// computed projections and stay nil when the inputs are missing.
type ProfessionalEntry struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Username    string   `json:"username,omitempty"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
	CoverURL    string   `json:"cover_url,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	CategoryID  string   `json:"category_id,omitempty"`
	Plan        string   `json:"plan,omitempty"`
	IsActive    bool     `json:"is_active"`
	IsOnline    bool     `json:"is_online"`
	Rating      *float64 `json:"rating"`
	Distance    *float64 `json:"distance"`
}

// ProfessionalDetail is the full professional profile view.
type ProfessionalDetail struct {
	ProfessionalEntry
	Bio         string `json:"bio,omitempty"`
	ServiceDesc string `json:"service_description,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
}

// EstablishmentEntry is an establishment search result row.
type EstablishmentEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city,omitempty"`
	Address     string   `json:"address,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Description string   `json:"description,omitempty"`
	CategoryID  string   `json:"category_id,omitempty"`
	IsActive    bool     `json:"is_active"`
	Rating      *float64 `json:"rating"`
	Distance    *float64 `json:"distance"`
}

// DirectoryService serves directory search, detail, and catalog reads.
type DirectoryService interface {
	SearchProfessionals(ctx context.Context, input SearchInput) ([]ProfessionalEntry, error)
	// GetProfessional returns the profile and records a profile view when
	// viewerID is a different, non-empty user.
	GetProfessional(ctx context.Context, id, viewerID string) (*ProfessionalDetail, error)
	SearchEstablishments(ctx context.Context, input SearchInput) ([]EstablishmentEntry, error)
	GetEstablishment(ctx context.Context, id string) (*EstablishmentEntry, error)
	ListCategories(ctx context.Context, categoryType string) ([]*domain.Category, error)
	ListPlans(ctx context.Context) ([]*domain.Plan, error)
}
