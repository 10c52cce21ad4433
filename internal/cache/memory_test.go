package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/akovalyov/authcore/internal/common/clock"
)

func TestMemory_SetGet(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemory(clk)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(got) != "value" {
		t.Errorf("expected value, got %s", got)
	}
}

func TestMemory_Miss(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemory(clk)

	_, err := c.Get(context.Background(), "absent")
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemory_Expiry(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemory(clk)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	clk.Advance(2 * time.Minute)

	_, err := c.Get(ctx, "key")
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after expiry, got %v", err)
	}
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemory(clk)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	clk.Advance(1000 * time.Hour)

	if _, err := c.Get(ctx, "key"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestMemory_Delete(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemory(clk)
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := c.Get(ctx, "key"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestMemory_Sweep(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemory(clk)
	ctx := context.Background()

	_ = c.Set(ctx, "short", []byte("a"), time.Minute)
	_ = c.Set(ctx, "long", []byte("b"), time.Hour)
	_ = c.Set(ctx, "forever", []byte("c"), 0)

	clk.Advance(2 * time.Minute)

	if deleted := c.Sweep(); deleted != 1 {
		t.Errorf("expected 1 entry swept, got %d", deleted)
	}

	if _, err := c.Get(ctx, "long"); err != nil {
		t.Errorf("expected long entry to survive, got %v", err)
	}
	if _, err := c.Get(ctx, "forever"); err != nil {
		t.Errorf("expected forever entry to survive, got %v", err)
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	c := NewMemory(clk)
	ctx := context.Background()

	keys := []string{"a", "b", "c", "d"}
	for _, key := range keys {
		_ = c.Set(ctx, key, []byte("stale"), time.Minute)
	}
	// Expire the seeded entries so concurrent Gets exercise the
	// expired-entry delete path alongside Set, Delete and Sweep.
	clk.Advance(2 * time.Minute)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := keys[(worker+i)%len(keys)]
				switch i % 4 {
				case 0:
					if err := c.Set(ctx, key, []byte("fresh"), time.Minute); err != nil {
						t.Errorf("set failed: %v", err)
					}
				case 1:
					if v, err := c.Get(ctx, key); err == nil && string(v) != "fresh" {
						t.Errorf("expected fresh value, got %q", v)
					}
				case 2:
					if err := c.Delete(ctx, key); err != nil {
						t.Errorf("delete failed: %v", err)
					}
				default:
					c.Sweep()
				}
			}
		}(worker)
	}
	wg.Wait()
}
