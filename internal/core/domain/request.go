package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a service request.
type RequestStatus string

const (
	RequestPendingApproval   RequestStatus = "pending_approval"
	RequestActive            RequestStatus = "active"
	RequestPendingEvaluation RequestStatus = "pending_evaluation"
	RequestFinished          RequestStatus = "finished"
)

// validRequestTransitions defines the allowed state machine transitions.
var validRequestTransitions = map[RequestStatus][]RequestStatus{
	RequestPendingApproval:   {RequestActive},
	RequestActive:            {RequestPendingEvaluation, RequestFinished},
	RequestPendingEvaluation: {RequestFinished},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrRequestNotFound = errors.New("service request not found")
var ErrInvalidTarget = errors.New("invalid request target")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validRequestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidRequestStatus reports whether s names a known request status.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestPendingApproval, RequestActive, RequestPendingEvaluation, RequestFinished:
		return true
	}
	return false
}

// ServiceRequest links a client to a professional for one engagement.
type ServiceRequest struct {
	ID             string        `json:"id"`
	ClientID       string        `json:"client_id"`
	ProfessionalID string        `json:"professional_id"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	ApprovedAt     *time.Time    `json:"approved_at,omitempty"`
	FinishedAt     *time.Time    `json:"finished_at,omitempty"`
}

// IsParticipant reports whether userID is either side of the request.
func (r *ServiceRequest) IsParticipant(userID string) bool {
	return r.ClientID == userID || r.ProfessionalID == userID
}
