package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// FavoriteEntry is a favorite enriched with the professional's summary.
type FavoriteEntry struct {
	ID           string             `json:"id"`
	CreatedAt    string             `json:"created_at"`
	Professional *ProfessionalEntry `json:"professional"`
}

// FavoriteService manages a user's bookmarked professionals.
type FavoriteService interface {
	Add(ctx context.Context, userID, professionalID string) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, professionalID string) error
	List(ctx context.Context, userID string) ([]FavoriteEntry, error)
}

// RateInput carries one rating submission.
type RateInput struct {
	TargetID string
	RaterID  string
	Score    int
	Comment  string
}

// RatingService records ratings and notifies interested users.
type RatingService interface {
	RateProfessional(ctx context.Context, input RateInput) (*domain.Rating, error)
	RateEstablishment(ctx context.Context, input RateInput) (*domain.Rating, error)
}

// ListRequestsInput scopes the request listing to the caller acting as
// client or professional.
type ListRequestsInput struct {
	UserID string
	As     string // "client" (default) or "professional"
	Status string // optional
}

// RequestService drives the service-request workflow.
type RequestService interface {
	Create(ctx context.Context, clientID, professionalID string) (*domain.ServiceRequest, error)
	List(ctx context.Context, input ListRequestsInput) ([]*domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id, userID string, status domain.RequestStatus) (*domain.ServiceRequest, error)
}

// MessageService drives conversations and chat messages.
type MessageService interface {
	CreateConversation(ctx context.Context, userID, participantID string) (*domain.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]*domain.Conversation, error)
	ListMessages(ctx context.Context, conversationID, userID string) ([]*domain.Message, error)
	Send(ctx context.Context, conversationID, senderID, content string) (*domain.Message, error)
}

// ViewService records profile views and serves the caller's view history.
type ViewService interface {
	// Record enqueues a profile view for asynchronous, deduplicated persistence.
	Record(viewerID, profileID string)
	ListRecent(ctx context.Context, viewerID string) ([]*domain.ProfileView, error)
}

// AdminStats aggregates entity counts for the back-office dashboard.
type AdminStats struct {
	Users          int64 `json:"users"`
	Establishments int64 `json:"establishments"`
}

// EstablishmentInput carries the mutable establishment fields for the
// back-office create and update operations.
type EstablishmentInput struct {
	Name        string
	City        string
	Address     string
	Phone       string
	Description string
	CategoryID  string
	Latitude    *float64
	Longitude   *float64
}

// PlanInput carries the mutable plan fields for the back-office create and
// update operations.
type PlanInput struct {
	Tier   string
	Name   string
	Price  float64
	Active bool
}

// AdminService serves the back-office operations.
type AdminService interface {
	Stats(ctx context.Context) (*AdminStats, error)
	CreateCategory(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error)
	RenameCategory(ctx context.Context, id, name string) (*domain.Category, error)
	CreateEstablishment(ctx context.Context, input EstablishmentInput) (*domain.Establishment, error)
	UpdateEstablishment(ctx context.Context, id string, input EstablishmentInput) (*domain.Establishment, error)
	CreatePlan(ctx context.Context, input PlanInput) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, id string, input PlanInput) (*domain.Plan, error)
	SetUserActive(ctx context.Context, userID string, active bool) error
}
