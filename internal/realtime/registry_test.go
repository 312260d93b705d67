package realtime

import (
	"sync"
	"testing"
)

func TestRegistry_RegisterCountsPerUser(t *testing.T) {
	r := NewRegistry(0)

	_, count, err := r.Register("alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected count 1 after first register, got %d", count)
	}

	_, count, err = r.Register("alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected count 2 after second register, got %d", count)
	}

	if got := r.CountFor("alice"); got != 2 {
		t.Fatalf("CountFor: expected 2, got %d", got)
	}
	if got := r.CountFor("bob"); got != 0 {
		t.Fatalf("CountFor unknown user: expected 0, got %d", got)
	}
}

func TestRegistry_EnforcesCap(t *testing.T) {
	r := NewRegistry(2)

	if _, _, err := r.Register("alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := r.Register("alice"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := r.Register("alice"); err != ErrTooManyConnections {
		t.Fatalf("expected ErrTooManyConnections, got %v", err)
	}

	// Another user is unaffected by alice's cap.
	if _, _, err := r.Register("bob"); err != nil {
		t.Fatalf("register bob: %v", err)
	}
}

func TestRegistry_UnregisterIsIdempotent(t *testing.T) {
	r := NewRegistry(0)

	c1, _, _ := r.Register("alice")
	c2, _, _ := r.Register("alice")

	if remaining := r.Unregister(c1); remaining != 1 {
		t.Fatalf("expected 1 remaining, got %d", remaining)
	}
	// Second unregister of the same conn must not decrement again.
	if remaining := r.Unregister(c1); remaining != 1 {
		t.Fatalf("double unregister changed the count: got %d", remaining)
	}
	if remaining := r.Unregister(c2); remaining != 0 {
		t.Fatalf("expected 0 remaining, got %d", remaining)
	}
}

func TestRegistry_CapFreedByUnregister(t *testing.T) {
	r := NewRegistry(1)

	c, _, err := r.Register("alice")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := r.Register("alice"); err == nil {
		t.Fatal("expected cap rejection")
	}
	r.Unregister(c)
	if _, _, err := r.Register("alice"); err != nil {
		t.Fatalf("register after free: %v", err)
	}
}

func TestRegistry_ConcurrentChurn(t *testing.T) {
	r := NewRegistry(0)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c, _, err := r.Register("alice")
				if err != nil {
					t.Error(err)
					return
				}
				r.Unregister(c)
			}
		}()
	}
	wg.Wait()

	if got := r.CountFor("alice"); got != 0 {
		t.Fatalf("expected 0 connections after churn, got %d", got)
	}
}
