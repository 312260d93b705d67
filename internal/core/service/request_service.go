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

type requestService struct {
	requests ports.RequestRepository
	users    ports.UserRepository
	emitter  ports.EventEmitter
	log      zerolog.Logger
}

// NewRequestService returns a RequestService implementation.
func NewRequestService(
	requests ports.RequestRepository,
	users ports.UserRepository,
	emitter ports.EventEmitter,
	log zerolog.Logger,
) ports.RequestService {
	return &requestService{requests: requests, users: users, emitter: emitter, log: log}
}

// Create opens a request from a client towards a professional. Requesting
// yourself is rejected.
func (s *requestService) Create(ctx context.Context, clientID, professionalID string) (*domain.ServiceRequest, error) {
	if professionalID == clientID {
		return nil, domain.ErrInvalidTarget
	}

	professional, err := s.users.FindByID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	if !professional.IsProfessional() {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	request, err := s.requests.Create(ctx, &domain.ServiceRequest{
		ID:             uuid.NewString(),
		ClientID:       clientID,
		ProfessionalID: professionalID,
		Status:         domain.RequestPendingApproval,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.emit(domain.RealtimeEvent{
		Type: domain.EventServiceRequest,
		Payload: map[string]any{
			"requestId":      request.ID,
			"professionalId": professionalID,
			"clientId":       clientID,
		},
		Targets: []string{professionalID, clientID},
	})

	s.log.Info().
		Str("request_id", request.ID).
		Str("client_id", clientID).
		Str("professional_id", professionalID).
		Msg("service request created")

	return request, nil
}

func (s *requestService) List(ctx context.Context, input ports.ListRequestsInput) ([]*domain.ServiceRequest, error) {
	filter := ports.RequestFilter{Status: domain.RequestStatus(input.Status)}
	if input.As == "professional" {
		filter.ProfessionalID = input.UserID
	} else {
		filter.ClientID = input.UserID
	}
	return s.requests.List(ctx, filter)
}

// UpdateStatus advances the request through its state machine. Only a
// participant may update, and only along a valid transition.
func (s *requestService) UpdateStatus(ctx context.Context, id, userID string, status domain.RequestStatus) (*domain.ServiceRequest, error) {
	if !domain.ValidRequestStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTransition, status)
	}

	request, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.IsParticipant(userID) {
		return nil, domain.ErrForbidden
	}
	if !request.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, request.Status, status)
	}

	now := time.Now().UTC()
	request.Status = status
	request.UpdatedAt = now
	switch status {
	case domain.RequestActive:
		request.ApprovedAt = &now
	case domain.RequestFinished:
		request.FinishedAt = &now
	}

	if err := s.requests.Update(ctx, request); err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}

	s.emit(domain.RealtimeEvent{
		Type: domain.EventServiceUpdate,
		Payload: map[string]any{
			"requestId":      request.ID,
			"status":         string(request.Status),
			"professionalId": request.ProfessionalID,
			"clientId":       request.ClientID,
		},
		Targets: []string{request.ProfessionalID, request.ClientID},
	})

	return request, nil
}

func (s *requestService) emit(event domain.RealtimeEvent) {
	if err := s.emitter.Emit(event); err != nil {
		s.log.Warn().Err(err).Str("type", event.Type).Msg("failed to emit request event")
	}
}
