package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type ratingService struct {
	ratings        ports.RatingRepository
	users          ports.UserRepository
	establishments ports.EstablishmentRepository
	emitter        ports.EventEmitter
	log            zerolog.Logger
}

// NewRatingService returns a RatingService implementation.
func NewRatingService(
	ratings ports.RatingRepository,
	users ports.UserRepository,
	establishments ports.EstablishmentRepository,
	emitter ports.EventEmitter,
	log zerolog.Logger,
) ports.RatingService {
	return &ratingService{
		ratings:        ratings,
		users:          users,
		establishments: establishments,
		emitter:        emitter,
		log:            log,
	}
}

// RateProfessional upserts the rater's score and notifies the professional.
func (s *ratingService) RateProfessional(ctx context.Context, input ports.RateInput) (*domain.Rating, error) {
	if input.Score < 1 || input.Score > 5 {
		return nil, domain.ErrInvalidRating
	}

	target, err := s.users.FindByID(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}
	if !target.IsProfessional() {
		return nil, domain.ErrUserNotFound
	}

	record, err := s.upsert(ctx, domain.RatingProfessional, input)
	if err != nil {
		return nil, err
	}

	s.emit(domain.RealtimeEvent{
		Type:    domain.EventRatingProfessional,
		Payload: map[string]any{"professionalId": input.TargetID, "rating": record.Score},
		Targets: []string{input.TargetID},
	})
	return record, nil
}

// RateEstablishment upserts the rater's score and broadcasts the update.
func (s *ratingService) RateEstablishment(ctx context.Context, input ports.RateInput) (*domain.Rating, error) {
	if input.Score < 1 || input.Score > 5 {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.establishments.FindByID(ctx, input.TargetID); err != nil {
		return nil, err
	}

	record, err := s.upsert(ctx, domain.RatingEstablishment, input)
	if err != nil {
		return nil, err
	}

	s.emit(domain.RealtimeEvent{
		Type:    domain.EventRatingEstablishment,
		Payload: map[string]any{"establishmentId": input.TargetID, "rating": record.Score},
	})
	return record, nil
}

func (s *ratingService) upsert(ctx context.Context, target domain.RatingTarget, input ports.RateInput) (*domain.Rating, error) {
	now := time.Now().UTC()
	return s.ratings.Upsert(ctx, &domain.Rating{
		ID:        uuid.NewString(),
		Target:    target,
		TargetID:  input.TargetID,
		RaterID:   input.RaterID,
		Score:     input.Score,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// emit is best-effort; a refused event must not fail the write that caused it.
func (s *ratingService) emit(event domain.RealtimeEvent) {
	if err := s.emitter.Emit(event); err != nil {
		s.log.Warn().Err(err).Str("type", event.Type).Msg("failed to emit rating event")
	}
}
