package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type adminService struct {
	users          ports.UserRepository
	establishments ports.EstablishmentRepository
	catalog        ports.CatalogRepository
	log            zerolog.Logger
}

// NewAdminService returns an AdminService implementation.
func NewAdminService(
	users ports.UserRepository,
	establishments ports.EstablishmentRepository,
	catalog ports.CatalogRepository,
	log zerolog.Logger,
) ports.AdminService {
	return &adminService{users: users, establishments: establishments, catalog: catalog, log: log}
}

func (s *adminService) Stats(ctx context.Context) (*ports.AdminStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	establishments, err := s.establishments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	return &ports.AdminStats{Users: users, Establishments: establishments}, nil
}

func (s *adminService) CreateCategory(ctx context.Context, name string, categoryType domain.CategoryType) (*domain.Category, error) {
	if categoryType != domain.CategoryProfessional && categoryType != domain.CategoryEstablishment {
		return nil, fmt.Errorf("%w: unknown category type %q", domain.ErrCategoryNotFound, categoryType)
	}
	created, err := s.catalog.CreateCategory(ctx, &domain.Category{
		ID:   uuid.NewString(),
		Name: name,
		Type: categoryType,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", created.ID).Str("name", name).Msg("category created")
	return created, nil
}

func (s *adminService) RenameCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	category, err := s.catalog.FindCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.catalog.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *adminService) CreateEstablishment(ctx context.Context, input ports.EstablishmentInput) (*domain.Establishment, error) {
	if input.CategoryID != "" {
		if _, err := s.catalog.FindCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}
	created, err := s.establishments.Create(ctx, &domain.Establishment{
		ID:          uuid.NewString(),
		Name:        input.Name,
		City:        input.City,
		Address:     input.Address,
		Phone:       input.Phone,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("establishment_id", created.ID).Str("name", created.Name).Msg("establishment created")
	return created, nil
}

func (s *adminService) UpdateEstablishment(ctx context.Context, id string, input ports.EstablishmentInput) (*domain.Establishment, error) {
	establishment, err := s.establishments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.CategoryID != "" && input.CategoryID != establishment.CategoryID {
		if _, err := s.catalog.FindCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	establishment.Name = input.Name
	establishment.City = input.City
	establishment.Address = input.Address
	establishment.Phone = input.Phone
	establishment.Description = input.Description
	establishment.CategoryID = input.CategoryID
	establishment.Latitude = input.Latitude
	establishment.Longitude = input.Longitude

	if err := s.establishments.Update(ctx, establishment); err != nil {
		return nil, err
	}
	return establishment, nil
}

func (s *adminService) CreatePlan(ctx context.Context, input ports.PlanInput) (*domain.Plan, error) {
	if !domain.ValidTier(input.Tier) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, input.Tier)
	}
	created, err := s.catalog.CreatePlan(ctx, &domain.Plan{
		ID:     uuid.NewString(),
		Tier:   input.Tier,
		Name:   input.Name,
		Price:  input.Price,
		Active: input.Active,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("plan_id", created.ID).Str("tier", created.Tier).Msg("plan created")
	return created, nil
}

func (s *adminService) UpdatePlan(ctx context.Context, id string, input ports.PlanInput) (*domain.Plan, error) {
	if !domain.ValidTier(input.Tier) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTier, input.Tier)
	}
	plan, err := s.catalog.FindPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Tier = input.Tier
	plan.Name = input.Name
	plan.Price = input.Price
	plan.Active = input.Active

	if err := s.catalog.UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *adminService) SetUserActive(ctx context.Context, userID string, active bool) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	return s.users.SetActive(ctx, userID, active)
}
