package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type favoriteService struct {
	favorites ports.FavoriteRepository
	users     ports.UserRepository
	ratings   ports.RatingRepository
	log       zerolog.Logger
}

// NewFavoriteService returns a FavoriteService implementation.
func NewFavoriteService(
	favorites ports.FavoriteRepository,
	users ports.UserRepository,
	ratings ports.RatingRepository,
	log zerolog.Logger,
) ports.FavoriteService {
	return &favoriteService{favorites: favorites, users: users, ratings: ratings, log: log}
}

func (s *favoriteService) Add(ctx context.Context, userID, professionalID string) (*domain.Favorite, error) {
	target, err := s.users.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if !target.IsProfessional() {
		return nil, domain.ErrUserNotFound
	}
	return s.favorites.Upsert(ctx, userID, professionalID)
}

func (s *favoriteService) Remove(ctx context.Context, userID, professionalID string) error {
	return s.favorites.Delete(ctx, userID, professionalID)
}

// List returns the user's favorites enriched with each professional's
// summary and aggregate rating.
func (s *favoriteService) List(ctx context.Context, userID string) ([]ports.FavoriteEntry, error) {
	favorites, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ProfessionalID)
	}
	ratingsByID, err := s.ratings.ListByTargets(ctx, domain.RatingProfessional, ids)
	if err != nil {
		return nil, fmt.Errorf("list favorites: ratings: %w", err)
	}

	entries := make([]ports.FavoriteEntry, 0, len(favorites))
	for _, f := range favorites {
		entry := ports.FavoriteEntry{
			ID:        f.ID,
			CreatedAt: f.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if professional, err := s.users.FindByID(ctx, f.ProfessionalID); err == nil {
			p := professionalEntry(professional, ratingsByID[f.ProfessionalID], nil, nil)
			entry.Professional = &p
		} else {
			// Dangling favorite (professional deleted); keep the row, drop the detail.
			s.log.Warn().Err(err).Str("professional_id", f.ProfessionalID).Msg("favorite references missing professional")
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
