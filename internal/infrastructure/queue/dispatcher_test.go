package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/uzeed/marketplace-api/internal/core/ports"
)

type captureProcessor struct {
	mu    sync.Mutex
	views []ports.ProfileViewInput
	done  chan struct{}
	want  int
}

func newCaptureProcessor(want int) *captureProcessor {
	return &captureProcessor{done: make(chan struct{}), want: want}
}

func (p *captureProcessor) Process(_ context.Context, view ports.ProfileViewInput) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.views = append(p.views, view)
	if len(p.views) == p.want {
		close(p.done)
	}
	return nil
}

func (p *captureProcessor) wait(t *testing.T) []ports.ProfileViewInput {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for views to be processed")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.ProfileViewInput(nil), p.views...)
}

func TestDispatcher_ProcessesEnqueuedViews(t *testing.T) {
	processor := newCaptureProcessor(3)
	d := NewDispatcher(4, processor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.ProfileViewInput{ViewerID: "a", ProfileID: "p1"})
	d.Enqueue(ports.ProfileViewInput{ViewerID: "b", ProfileID: "p2"})
	d.Enqueue(ports.ProfileViewInput{ViewerID: "c", ProfileID: "p3"})

	views := processor.wait(t)
	if len(views) != 3 {
		t.Fatalf("expected 3 processed views, got %d", len(views))
	}
}

func TestDispatcher_SameProfileKeepsArrivalOrder(t *testing.T) {
	processor := newCaptureProcessor(5)
	d := NewDispatcher(4, processor, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All views hit the same shard, so they must be processed in order.
	viewers := []string{"v1", "v2", "v3", "v4", "v5"}
	for _, v := range viewers {
		d.Enqueue(ports.ProfileViewInput{ViewerID: v, ProfileID: "hot-profile"})
	}

	views := processor.wait(t)
	for i, v := range viewers {
		if views[i].ViewerID != v {
			t.Fatalf("position %d: expected viewer %s, got %s", i, v, views[i].ViewerID)
		}
	}
}

func TestDispatcher_ShardingIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, newCaptureProcessor(0), zerolog.Nop())

	first := d.shardIndex("some-profile-id")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("some-profile-id"); got != first {
			t.Fatalf("shard index changed between calls: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
