package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/api/metrics"
	"github.com/uzeed/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes profile views to a fixed set of workers using consistent
// hashing on the profile id, so views of the same profile are recorded in
// arrival order.
type Dispatcher struct {
	workers   []chan ports.ProfileViewInput
	processor ports.ViewProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.ViewProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.ProfileViewInput, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ProfileViewInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a view to the worker responsible for its profile. Full
// channels drop the view; a lost profile view is acceptable.
func (d *Dispatcher) Enqueue(view ports.ProfileViewInput) {
	idx := d.shardIndex(view.ProfileID)
	select {
	case d.workers[idx] <- view:
		metrics.ViewsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("profile_id", view.ProfileID).Msg("view queue full, dropping view")
	}
}

// shardIndex maps a profile id deterministically to a worker index.
func (d *Dispatcher) shardIndex(profileID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(profileID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ProfileViewInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-ch:
			if !ok {
				return
			}
			metrics.ViewsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.processor.Process(ctx, view); err != nil {
				d.log.Error().Err(err).
					Str("profile_id", view.ProfileID).
					Int("worker_id", id).
					Msg("view recording failed")
			}
		}
	}
}
