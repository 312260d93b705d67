package realtime

// sendBuffer is the per-connection outbound frame buffer. Sends beyond the
// buffer are dropped; the channel is a best-effort notification path.
const sendBuffer = 16

// Frame is one wire message: "event: <Event>\n" + "data: <Data>\n\n".
type Frame struct {
	Event string
	Data  []byte
}

// Conn is one open live-update stream owned by a single user. The serving
// goroutine drains C and writes frames to the transport in FIFO order.
type Conn struct {
	userID string
	ch     chan Frame
	closed bool // guarded by the owning Registry's mutex
}

// UserID returns the id of the user owning this connection.
func (c *Conn) UserID() string { return c.userID }

// C is the outbound frame channel drained by the serving goroutine.
func (c *Conn) C() <-chan Frame { return c.ch }

// send queues a frame without blocking. Frames are dropped when the buffer
// is full; the transport's own disconnect handling cleans up dead streams.
func (c *Conn) send(f Frame) {
	select {
	case c.ch <- f:
	default:
	}
}
