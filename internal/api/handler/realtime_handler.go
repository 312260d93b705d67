package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/api/metrics"
	"github.com/uzeed/marketplace-api/internal/realtime"
)

type RealtimeHandler struct {
	registry  *realtime.Registry
	tracker   *realtime.Tracker
	heartbeat time.Duration
	log       zerolog.Logger
}

func NewRealtimeHandler(registry *realtime.Registry, tracker *realtime.Tracker, heartbeat time.Duration, log zerolog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		registry:  registry,
		tracker:   tracker,
		heartbeat: heartbeat,
		log:       log,
	}
}

// Stream opens a server-sent-events stream delivering live updates to the
// authenticated user. The request goroutine is the writer: it drains the
// connection's frame channel and a heartbeat ticker until the client
// disconnects.
//
// @Summary      Live update stream (SSE)
// @Tags         realtime
// @Produce      text/event-stream
// @Success      200
// @Failure      401  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Security     BearerAuth
// @Router       /realtime/stream [get]
func (h *RealtimeHandler) Stream(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	conn, count, err := h.registry.Register(userID)
	if err != nil {
		metrics.RealtimeConnectionsRejectedTotal.Inc()
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many open streams")
	}

	ctx := c.Request().Context()
	metrics.RealtimeConnections.Inc()
	h.tracker.Connected(ctx, userID, count)
	defer func() {
		remaining := h.registry.Unregister(conn)
		metrics.RealtimeConnections.Dec()
		// The request context is gone once the client hangs up; presence
		// persistence uses its own short-lived context.
		offCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.tracker.Disconnected(offCtx, userID, remaining)
	}()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if err := writeFrame(res, realtime.Frame{Event: "connected", Data: []byte(`{"ok":true}`)}); err != nil {
		return nil
	}

	h.log.Debug().Str("user_id", userID).Int("count", count).Msg("stream opened")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Debug().Str("user_id", userID).Msg("stream closed")
			return nil
		case frame := <-conn.C():
			if err := writeFrame(res, frame); err != nil {
				return nil
			}
		case <-ticker.C:
			beat, _ := json.Marshal(map[string]int64{"ts": time.Now().UnixMilli()})
			if err := writeFrame(res, realtime.Frame{Event: "heartbeat", Data: beat}); err != nil {
				return nil
			}
		}
	}
}

// writeFrame renders one SSE frame and flushes it to the client immediately.
func writeFrame(res *echo.Response, f realtime.Frame) error {
	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", f.Event, f.Data); err != nil {
		return err
	}
	res.Flush()
	return nil
}
