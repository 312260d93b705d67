package realtime

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/api/metrics"
	"github.com/uzeed/marketplace-api/internal/core/domain"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

// Tracker derives presence from registry transitions. It flips the stored
// isOnline flag and announces a presence:update only when the user's
// connection count crosses the 0/non-0 boundary, so bursty reconnects do not
// flicker presence.
type Tracker struct {
	store ports.PresenceStore
	hub   *Hub
	log   zerolog.Logger
}

// NewTracker creates a Tracker persisting to store and announcing via hub.
func NewTracker(store ports.PresenceStore, hub *Hub, log zerolog.Logger) *Tracker {
	return &Tracker{store: store, hub: hub, log: log}
}

// Connected is called with the user's connection count after a successful
// register. Only the first connection flips the user online.
func (t *Tracker) Connected(ctx context.Context, userID string, countAfter int) {
	if countAfter == 1 {
		t.setOnline(ctx, userID, true)
	}
}

// Disconnected is called with the user's remaining count after an unregister.
// Only the last connection closing flips the user offline.
func (t *Tracker) Disconnected(ctx context.Context, userID string, remaining int) {
	if remaining == 0 {
		t.setOnline(ctx, userID, false)
	}
}

// setOnline persists the flag and broadcasts the transition. A storage
// failure is logged and does not take down the connection-serving loop; the
// announcement still goes out since the registry is the live source of truth.
func (t *Tracker) setOnline(ctx context.Context, userID string, online bool) {
	if err := t.store.SetOnline(ctx, userID, online); err != nil {
		metrics.PresencePersistErrorsTotal.Inc()
		t.log.Warn().Err(err).
			Str("user_id", userID).
			Bool("online", online).
			Msg("failed to persist presence flag")
	}

	state := "offline"
	if online {
		state = "online"
	}
	metrics.PresenceFlipsTotal.WithLabelValues(state).Inc()

	if err := t.hub.Emit(domain.RealtimeEvent{
		Type:    domain.EventPresenceUpdate,
		Payload: map[string]any{"userId": userID, "isOnline": online},
	}); err != nil {
		t.log.Warn().Err(err).Str("user_id", userID).Msg("failed to emit presence update")
	}
}
