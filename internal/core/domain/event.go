package domain

// Realtime event types pushed over the live-update stream.
const (
	EventPresenceUpdate      = "presence:update"
	EventRatingProfessional  = "rating:professional"
	EventRatingEstablishment = "rating:establishment"
	EventServiceRequest      = "service:request"
	EventServiceUpdate       = "service:update"
	EventMessageNew          = "message:new"
)

// RealtimeEvent is an ephemeral notification delivered best-effort to open
// connections. When Targets is empty the event is broadcast to every
// connected user; otherwise only the listed users receive it.
type RealtimeEvent struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
	Targets []string       `json:"targets,omitempty"`
}
