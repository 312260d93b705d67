package realtime

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/core/domain"
)

func drain(t *testing.T, c *Conn) []Frame {
	t.Helper()
	var out []Frame
	for {
		select {
		case f := <-c.C():
			out = append(out, f)
		default:
			return out
		}
	}
}

func TestHub_TargetedDelivery(t *testing.T) {
	reg := NewRegistry(0)
	hub := NewHub(reg, zerolog.Nop())

	alice1, _, _ := reg.Register("alice")
	alice2, _, _ := reg.Register("alice")
	bob, _, _ := reg.Register("bob")

	err := hub.Emit(domain.RealtimeEvent{
		Type:    domain.EventServiceRequest,
		Payload: map[string]any{"requestId": "r1"},
		Targets: []string{"alice"},
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	if got := len(drain(t, alice1)); got != 1 {
		t.Fatalf("alice conn 1: expected 1 frame, got %d", got)
	}
	if got := len(drain(t, alice2)); got != 1 {
		t.Fatalf("alice conn 2: expected 1 frame, got %d", got)
	}
	if got := len(drain(t, bob)); got != 0 {
		t.Fatalf("bob should receive nothing, got %d frames", got)
	}
}

func TestHub_BroadcastDelivery(t *testing.T) {
	reg := NewRegistry(0)
	hub := NewHub(reg, zerolog.Nop())

	alice, _, _ := reg.Register("alice")
	bob, _, _ := reg.Register("bob")

	err := hub.Emit(domain.RealtimeEvent{
		Type:    domain.EventPresenceUpdate,
		Payload: map[string]any{"userId": "carol", "isOnline": true},
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}

	for name, c := range map[string]*Conn{"alice": alice, "bob": bob} {
		frames := drain(t, c)
		if len(frames) != 1 {
			t.Fatalf("%s: expected 1 frame, got %d", name, len(frames))
		}
		if frames[0].Event != domain.EventPresenceUpdate {
			t.Fatalf("%s: unexpected event %q", name, frames[0].Event)
		}
		var payload map[string]any
		if err := json.Unmarshal(frames[0].Data, &payload); err != nil {
			t.Fatalf("%s: invalid frame data: %v", name, err)
		}
		if payload["userId"] != "carol" || payload["isOnline"] != true {
			t.Fatalf("%s: unexpected payload %v", name, payload)
		}
	}
}

func TestHub_RejectsMalformedEvents(t *testing.T) {
	hub := NewHub(NewRegistry(0), zerolog.Nop())

	if err := hub.Emit(domain.RealtimeEvent{Payload: map[string]any{"x": 1}}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("empty type: expected ErrInvalidEvent, got %v", err)
	}
	if err := hub.Emit(domain.RealtimeEvent{Type: domain.EventMessageNew}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("nil payload: expected ErrInvalidEvent, got %v", err)
	}
	if err := hub.Emit(domain.RealtimeEvent{
		Type:    domain.EventMessageNew,
		Payload: map[string]any{"bad": func() {}},
	}); !errors.Is(err, ErrInvalidEvent) {
		t.Fatalf("unmarshalable payload: expected ErrInvalidEvent, got %v", err)
	}
}

func TestHub_FullBufferDropsFrames(t *testing.T) {
	reg := NewRegistry(0)
	hub := NewHub(reg, zerolog.Nop())

	slow, _, _ := reg.Register("alice")

	for i := 0; i < sendBuffer+5; i++ {
		if err := hub.Emit(domain.RealtimeEvent{
			Type:    domain.EventMessageNew,
			Payload: map[string]any{"n": i},
			Targets: []string{"alice"},
		}); err != nil {
			t.Fatalf("emit %d: %v", i, err)
		}
	}

	if got := len(drain(t, slow)); got != sendBuffer {
		t.Fatalf("expected exactly %d buffered frames, got %d", sendBuffer, got)
	}
}
