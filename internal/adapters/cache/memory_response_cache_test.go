package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryResponseCacheGetPut(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryResponseCache(time.Minute)

	if _, ok, _ := c.Get(ctx, "https://maps.app.goo.gl/abc"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	if err := c.Put(ctx, " https://maps.app.goo.gl/abc ", "location: x"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get(ctx, "https://maps.app.goo.gl/abc")
	if err != nil || !ok || got != "location: x" {
		t.Fatalf("Get = %q, %v, %v; want hit", got, ok, err)
	}
}

func TestMemoryResponseCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	c := NewMemoryResponseCache(time.Minute)
	c.now = func() time.Time { return now }

	_ = c.Put(ctx, "k", "v")
	now = now.Add(59 * time.Second)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatalf("entry expired too early")
	}

	now = now.Add(time.Second)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("entry should have expired")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not removed, len = %d", c.Len())
	}
}

func TestMemoryResponseCacheIgnoresBlankKeys(t *testing.T) {
	c := NewMemoryResponseCache(time.Minute)
	_ = c.Put(context.Background(), "  ", "v")

	if c.Len() != 0 {
		t.Fatalf("len = %d, want 0", c.Len())
	}
}
