package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

func newRatingService(users ports.UserRepository, establishments ports.EstablishmentRepository, emitter ports.EventEmitter) ports.RatingService {
	ratings := &stubRatingRepo{
		upsertFn: func(_ context.Context, r *domain.Rating) (*domain.Rating, error) { return r, nil },
	}
	return NewRatingService(ratings, users, establishments, emitter, zerolog.Nop())
}

func TestRateProfessional_TargetsTheProfessional(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleProfessional}, nil
		},
	}
	emitter := &recordingEmitter{}
	svc := newRatingService(users, &stubEstablishmentRepo{}, emitter)

	rating, err := svc.RateProfessional(context.Background(), ports.RateInput{
		TargetID: "pro1",
		RaterID:  "client1",
		Score:    5,
		Comment:  "great",
	})
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rating.Target != domain.RatingProfessional || rating.Score != 5 {
		t.Fatalf("unexpected rating: %+v", rating)
	}

	events := emitter.emitted()
	if len(events) != 1 || events[0].Type != domain.EventRatingProfessional {
		t.Fatalf("expected one rating:professional event, got %+v", events)
	}
	if len(events[0].Targets) != 1 || events[0].Targets[0] != "pro1" {
		t.Fatalf("rating event must target only the professional, got %v", events[0].Targets)
	}
}

func TestRateEstablishment_Broadcasts(t *testing.T) {
	establishments := &stubEstablishmentRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.Establishment, error) {
			return &domain.Establishment{ID: id}, nil
		},
	}
	emitter := &recordingEmitter{}
	svc := newRatingService(&stubUserRepo{}, establishments, emitter)

	if _, err := svc.RateEstablishment(context.Background(), ports.RateInput{
		TargetID: "est1",
		RaterID:  "client1",
		Score:    3,
	}); err != nil {
		t.Fatalf("rate: %v", err)
	}

	events := emitter.emitted()
	if len(events) != 1 || events[0].Type != domain.EventRatingEstablishment {
		t.Fatalf("expected one rating:establishment event, got %+v", events)
	}
	if len(events[0].Targets) != 0 {
		t.Fatalf("establishment ratings broadcast, got targets %v", events[0].Targets)
	}
}

func TestRate_RejectsOutOfRangeScores(t *testing.T) {
	svc := newRatingService(&stubUserRepo{}, &stubEstablishmentRepo{}, &recordingEmitter{})
	ctx := context.Background()

	for _, score := range []int{0, 6, -1} {
		if _, err := svc.RateProfessional(ctx, ports.RateInput{TargetID: "pro1", Score: score}); !errors.Is(err, domain.ErrInvalidRating) {
			t.Fatalf("score %d: expected ErrInvalidRating, got %v", score, err)
		}
	}
}

func TestRateProfessional_RejectsNonProfessionalTarget(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleClient}, nil
		},
	}
	svc := newRatingService(users, &stubEstablishmentRepo{}, &recordingEmitter{})

	if _, err := svc.RateProfessional(context.Background(), ports.RateInput{TargetID: "u2", Score: 4}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRate_EmitFailureDoesNotFailTheWrite(t *testing.T) {
	users := &stubUserRepo{
		findByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleProfessional}, nil
		},
	}
	emitter := &recordingEmitter{err: errors.New("hub rejected event")}
	svc := newRatingService(users, &stubEstablishmentRepo{}, emitter)

	if _, err := svc.RateProfessional(context.Background(), ports.RateInput{TargetID: "pro1", Score: 4}); err != nil {
		t.Fatalf("a refused event must not fail the rating write: %v", err)
	}
}
