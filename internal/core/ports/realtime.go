package ports

import (
	"context"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

// EventEmitter pushes realtime events to connected users. Delivery is
// best-effort, at-most-once; Emit fails only on a malformed event.
type EventEmitter interface {
	Emit(event domain.RealtimeEvent) error
}

// PresenceStore persists the online flag on the user record.
type PresenceStore interface {
	SetOnline(ctx context.Context, userID string, online bool) error
}
