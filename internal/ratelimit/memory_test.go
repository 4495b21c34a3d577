// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreCapAndReject(t *testing.T) {
	s := NewMemoryStore(5, time.Hour)
	defer s.Stop()
	ctx := context.Background()

	// The 5th submission within the window succeeds.
	for i := 1; i <= 5; i++ {
		res, err := s.Allow(ctx, "203.0.113.10")
		if err != nil {
			t.Fatalf("Allow %d: %v", i, err)
		}
		if !res.Allowed {
			t.Fatalf("submission %d should be allowed", i)
		}
		if res.Remaining != 5-i {
			t.Errorf("submission %d: remaining %d, want %d", i, res.Remaining, 5-i)
		}
	}

	// The 6th within the same window is rejected.
	res, err := s.Allow(ctx, "203.0.113.10")
	if err != nil {
		t.Fatal(err)
	}
	if res.Allowed {
		t.Error("6th submission should be rejected")
	}
	if res.ResetAt.Before(time.Now()) {
		t.Error("ResetAt should be in the future")
	}
}

func TestMemoryStoreWindowReset(t *testing.T) {
	s := NewMemoryStore(1, 100*time.Millisecond)
	defer s.Stop()
	ctx := context.Background()

	if res, _ := s.Allow(ctx, "203.0.113.20"); !res.Allowed {
		t.Fatal("first submission should be allowed")
	}
	if res, _ := s.Allow(ctx, "203.0.113.20"); res.Allowed {
		t.Fatal("second submission should be rejected")
	}

	time.Sleep(150 * time.Millisecond)

	if res, _ := s.Allow(ctx, "203.0.113.20"); !res.Allowed {
		t.Error("submission after the window elapses should be allowed")
	}
}

func TestMemoryStoreKeysAreIndependent(t *testing.T) {
	s := NewMemoryStore(1, time.Hour)
	defer s.Stop()
	ctx := context.Background()

	if res, _ := s.Allow(ctx, "a"); !res.Allowed {
		t.Fatal("first key should be allowed")
	}
	if res, _ := s.Allow(ctx, "b"); !res.Allowed {
		t.Error("second key should be allowed independently")
	}
	if res, _ := s.Allow(ctx, "a"); res.Allowed {
		t.Error("first key should be at its cap")
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	s := NewMemoryStore(1, 50*time.Millisecond)
	defer s.Stop()

	s.Allow(context.Background(), "stale")
	time.Sleep(120 * time.Millisecond)

	s.mu.Lock()
	_, exists := s.entries["stale"]
	s.mu.Unlock()
	if exists {
		t.Error("expired entry should have been evicted")
	}
}
