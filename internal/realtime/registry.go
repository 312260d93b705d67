// Package realtime implements the live-update subsystem: a per-user
// connection registry, presence tracking derived from registry transitions,
// and best-effort event fan-out over SSE-framed streams.
package realtime

import (
	"errors"
	"sync"
)

// ErrTooManyConnections is returned by Register when the per-user cap is hit.
var ErrTooManyConnections = errors.New("too many open connections for user")

// Registry tracks every open connection grouped by owning user. All mutations
// and count checks happen under one mutex so presence decisions observe a
// consistent count.
type Registry struct {
	mu         sync.Mutex
	conns      map[string]map[*Conn]struct{}
	maxPerUser int // 0 = unbounded
}

// NewRegistry creates a Registry. maxPerUser caps concurrent connections per
// user; 0 disables the cap.
func NewRegistry(maxPerUser int) *Registry {
	return &Registry{
		conns:      make(map[string]map[*Conn]struct{}),
		maxPerUser: maxPerUser,
	}
}

// Register adds a connection for userID and returns it together with the
// user's connection count after the insert. A count of 1 means this is the
// user's first open connection. Returns ErrTooManyConnections when the
// per-user cap would be exceeded.
func (r *Registry) Register(userID string) (*Conn, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.conns[userID]
	if r.maxPerUser > 0 && len(set) >= r.maxPerUser {
		return nil, len(set), ErrTooManyConnections
	}
	if set == nil {
		set = make(map[*Conn]struct{})
		r.conns[userID] = set
	}

	conn := &Conn{userID: userID, ch: make(chan Frame, sendBuffer)}
	set[conn] = struct{}{}
	return conn, len(set), nil
}

// Unregister removes a connection and returns the owner's remaining count.
// Calling it twice for the same connection is a no-op on the second call.
func (r *Registry) Unregister(conn *Conn) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	remaining := 0
	if set, ok := r.conns[conn.userID]; ok {
		if !conn.closed {
			delete(set, conn)
		}
		remaining = len(set)
		if remaining == 0 {
			delete(r.conns, conn.userID)
		}
	}
	conn.closed = true
	return remaining
}

// CountFor returns the number of open connections held by userID.
func (r *Registry) CountFor(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns[userID])
}

// connsFor snapshots the connections for a set of users. A nil users slice
// snapshots every open connection.
func (r *Registry) connsFor(users []string) []*Conn {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Conn
	if users == nil {
		for _, set := range r.conns {
			for c := range set {
				out = append(out, c)
			}
		}
		return out
	}
	for _, u := range users {
		for c := range r.conns[u] {
			out = append(out, c)
		}
	}
	return out
}
