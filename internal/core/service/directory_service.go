package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/api/metrics"
	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
	"github.com/uzeed/marketplace-api/internal/ranking"
)

type directoryService struct {
	users          ports.UserRepository
	establishments ports.EstablishmentRepository
	catalog        ports.CatalogRepository
	ratings        ports.RatingRepository
	views          ports.ViewService
	log            zerolog.Logger
}

// NewDirectoryService returns a DirectoryService implementation.
func NewDirectoryService(
	users ports.UserRepository,
	establishments ports.EstablishmentRepository,
	catalog ports.CatalogRepository,
	ratings ports.RatingRepository,
	views ports.ViewService,
	log zerolog.Logger,
) ports.DirectoryService {
	return &directoryService{
		users:          users,
		establishments: establishments,
		catalog:        catalog,
		ratings:        ratings,
		views:          views,
		log:            log,
	}
}

// SearchProfessionals runs the filter pipeline: exact-match filters in the
// query, then plan tier, radius, and minimum rating post-fetch. Result order
// is storage order.
func (s *directoryService) SearchProfessionals(ctx context.Context, input ports.SearchInput) ([]ports.ProfessionalEntry, error) {
	start := time.Now()
	defer func() {
		metrics.DirectorySearchDuration.WithLabelValues("professionals").Observe(time.Since(start).Seconds())
	}()

	candidates, err := s.users.ListProfessionals(ctx, ports.ProfessionalFilter{
		CategoryID: input.CategoryID,
		Gender:     input.Gender,
		Active:     input.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("search professionals: %w", err)
	}

	if input.PlanTier != "" {
		kept := candidates[:0]
		for _, p := range candidates {
			if p.PlanTier == input.PlanTier {
				kept = append(kept, p)
			}
		}
		candidates = kept
	}

	ids := make([]string, 0, len(candidates))
	for _, p := range candidates {
		ids = append(ids, p.ID)
	}
	ratingsByID, err := s.ratings.ListByTargets(ctx, domain.RatingProfessional, ids)
	if err != nil {
		return nil, fmt.Errorf("search professionals: ratings: %w", err)
	}

	entries := make([]ports.ProfessionalEntry, 0, len(candidates))
	for _, p := range candidates {
		entry := professionalEntry(p, ratingsByID[p.ID], input.Lat, input.Lng)
		if !ranking.WithinRange(entry.Distance, input.RangeKm) {
			continue
		}
		if !ranking.MeetsMinRating(entry.Rating, input.MinRating) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetProfessional returns one profile and records a profile view when the
// viewer is someone else.
func (s *directoryService) GetProfessional(ctx context.Context, id, viewerID string) (*ports.ProfessionalDetail, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsProfessional() {
		return nil, domain.ErrUserNotFound
	}

	ratings, err := s.ratings.ListByTarget(ctx, domain.RatingProfessional, id)
	if err != nil {
		return nil, fmt.Errorf("get professional: ratings: %w", err)
	}

	if viewerID != "" && viewerID != id {
		s.views.Record(viewerID, id)
	}

	entry := professionalEntry(user, ratings, nil, nil)
	return &ports.ProfessionalDetail{
		ProfessionalEntry: entry,
		Bio:               user.Bio,
		ServiceDesc:       user.ServiceDesc,
		City:              user.City,
		Address:           user.Address,
	}, nil
}

// SearchEstablishments runs the establishment pipeline: category filter in the
// query, then radius and minimum rating post-fetch.
func (s *directoryService) SearchEstablishments(ctx context.Context, input ports.SearchInput) ([]ports.EstablishmentEntry, error) {
	start := time.Now()
	defer func() {
		metrics.DirectorySearchDuration.WithLabelValues("establishments").Observe(time.Since(start).Seconds())
	}()

	candidates, err := s.establishments.List(ctx, ports.EstablishmentFilter{CategoryID: input.CategoryID})
	if err != nil {
		return nil, fmt.Errorf("search establishments: %w", err)
	}

	ids := make([]string, 0, len(candidates))
	for _, e := range candidates {
		ids = append(ids, e.ID)
	}
	ratingsByID, err := s.ratings.ListByTargets(ctx, domain.RatingEstablishment, ids)
	if err != nil {
		return nil, fmt.Errorf("search establishments: ratings: %w", err)
	}

	entries := make([]ports.EstablishmentEntry, 0, len(candidates))
	for _, e := range candidates {
		entry := establishmentEntry(e, ratingsByID[e.ID], input.Lat, input.Lng)
		if !ranking.WithinRange(entry.Distance, input.RangeKm) {
			continue
		}
		if !ranking.MeetsMinRating(entry.Rating, input.MinRating) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *directoryService) GetEstablishment(ctx context.Context, id string) (*ports.EstablishmentEntry, error) {
	e, err := s.establishments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListByTarget(ctx, domain.RatingEstablishment, id)
	if err != nil {
		return nil, fmt.Errorf("get establishment: ratings: %w", err)
	}
	entry := establishmentEntry(e, ratings, nil, nil)
	return &entry, nil
}

func (s *directoryService) ListCategories(ctx context.Context, categoryType string) ([]*domain.Category, error) {
	ct := domain.CategoryType(categoryType)
	if ct != domain.CategoryProfessional && ct != domain.CategoryEstablishment {
		ct = ""
	}
	return s.catalog.ListCategories(ctx, ct)
}

func (s *directoryService) ListPlans(ctx context.Context) ([]*domain.Plan, error) {
	return s.catalog.ListActivePlans(ctx)
}

func professionalEntry(p *domain.User, ratings []*domain.Rating, lat, lng *float64) ports.ProfessionalEntry {
	return ports.ProfessionalEntry{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Username:    p.Username,
		AvatarURL:   p.AvatarURL,
		CoverURL:    p.CoverURL,
		Gender:      p.Gender,
		CategoryID:  p.CategoryID,
		Plan:        p.PlanTier,
		IsActive:    p.IsActive,
		IsOnline:    p.IsOnline,
		Rating:      ranking.Average(scores(ratings)),
		Distance:    ranking.Distance(lat, lng, p.Latitude, p.Longitude),
	}
}

func establishmentEntry(e *domain.Establishment, ratings []*domain.Rating, lat, lng *float64) ports.EstablishmentEntry {
	return ports.EstablishmentEntry{
		ID:          e.ID,
		Name:        e.Name,
		City:        e.City,
		Address:     e.Address,
		Phone:       e.Phone,
		Description: e.Description,
		CategoryID:  e.CategoryID,
		IsActive:    e.IsActive,
		Rating:      ranking.Average(scores(ratings)),
		Distance:    ranking.Distance(lat, lng, e.Latitude, e.Longitude),
	}
}

func scores(ratings []*domain.Rating) []int {
	out := make([]int, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, r.Score)
	}
	return out
}
