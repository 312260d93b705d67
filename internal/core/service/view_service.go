package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/api/metrics"
	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

const recentViewsLimit = 50

// ViewDedup abstracts the short-lived duplicate-view store (Redis).
type ViewDedup interface {
	IsDuplicate(ctx context.Context, viewerID, profileID string) (bool, error)
	Mark(ctx context.Context, viewerID, profileID string) error
}

// ViewDispatcher is the interface the service uses to enqueue views.
type ViewDispatcher interface {
	Enqueue(view ports.ProfileViewInput)
}

type viewService struct {
	dispatcher ViewDispatcher
	repo       ports.ViewRepository
}

// NewViewService returns a ViewService that records views asynchronously
// through the dispatcher.
func NewViewService(dispatcher ViewDispatcher, repo ports.ViewRepository) ports.ViewService {
	return &viewService{dispatcher: dispatcher, repo: repo}
}

// Record enqueues the view; persistence happens on a queue worker so the
// profile read path never waits on the view write.
func (s *viewService) Record(viewerID, profileID string) {
	s.dispatcher.Enqueue(ports.ProfileViewInput{
		ViewerID:  viewerID,
		ProfileID: profileID,
		ViewedAt:  time.Now().UTC(),
	})
}

func (s *viewService) ListRecent(ctx context.Context, viewerID string) ([]*domain.ProfileView, error) {
	return s.repo.ListByViewer(ctx, viewerID, recentViewsLimit)
}

type viewRecorder struct {
	repo  ports.ViewRepository
	dedup ViewDedup
	log   zerolog.Logger
}

// NewViewRecorder returns the ViewProcessor run by the queue workers.
func NewViewRecorder(repo ports.ViewRepository, dedup ViewDedup, log zerolog.Logger) ports.ViewProcessor {
	return &viewRecorder{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single profile view.
func (r *viewRecorder) Process(ctx context.Context, view ports.ProfileViewInput) error {
	isDup, err := r.dedup.IsDuplicate(ctx, view.ViewerID, view.ProfileID)
	if err != nil {
		r.log.Warn().Err(err).Str("viewer_id", view.ViewerID).Msg("view dedup check failed, recording anyway")
	} else if isDup {
		metrics.ViewsDedupTotal.WithLabelValues("hit").Inc()
		return nil
	}
	metrics.ViewsDedupTotal.WithLabelValues("miss").Inc()

	if markErr := r.dedup.Mark(ctx, view.ViewerID, view.ProfileID); markErr != nil {
		r.log.Warn().Err(markErr).Str("viewer_id", view.ViewerID).Msg("failed to set view dedup key")
	}

	if err := r.repo.Insert(ctx, &domain.ProfileView{
		ViewerID:  view.ViewerID,
		ProfileID: view.ProfileID,
		CreatedAt: view.ViewedAt,
	}); err != nil {
		return fmt.Errorf("record view: %w", err)
	}

	metrics.ViewsRecordedTotal.Inc()
	return nil
}
