package realtime

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/api/metrics"
	"github.com/uzeed/marketplace-api/internal/core/domain"
)

var ErrInvalidEvent = errors.New("invalid realtime event")

// Hub fans events out to open connections. Delivery is at-most-once with no
// acknowledgement or retry; the only ordering guarantee is FIFO per
// connection.
type Hub struct {
	reg *Registry
	log zerolog.Logger
}

// NewHub creates a Hub over the given registry.
func NewHub(reg *Registry, log zerolog.Logger) *Hub {
	return &Hub{reg: reg, log: log}
}

// Emit delivers event to the connections of event.Targets, or to every open
// connection when no targets are set. Malformed events are rejected here
// rather than written as broken frames.
func (h *Hub) Emit(event domain.RealtimeEvent) error {
	if event.Type == "" {
		return fmt.Errorf("%w: empty type", ErrInvalidEvent)
	}
	if event.Payload == nil {
		return fmt.Errorf("%w: nil payload", ErrInvalidEvent)
	}

	data, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	mode := "broadcast"
	var conns []*Conn
	if len(event.Targets) > 0 {
		mode = "targeted"
		conns = h.reg.connsFor(event.Targets)
	} else {
		conns = h.reg.connsFor(nil)
	}

	frame := Frame{Event: event.Type, Data: data}
	for _, c := range conns {
		c.send(frame)
	}

	metrics.EventsEmittedTotal.WithLabelValues(event.Type, mode).Inc()
	h.log.Debug().
		Str("type", event.Type).
		Str("mode", mode).
		Int("recipients", len(conns)).
		Msg("realtime event emitted")

	return nil
}
