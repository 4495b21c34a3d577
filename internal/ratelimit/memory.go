// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// entry tracks one client's window: submissions seen and when the
// window resets.
type entry struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a process-local fixed-window store. State is not
// persisted and not shared across instances; it resets on restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
	stopCh  chan struct{}
}

// NewMemoryStore creates a store allowing max submissions per window.
// It starts a background goroutine that evicts expired entries.
func NewMemoryStore(max int, window time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.cleanup()
			case <-s.stopCh:
				return
			}
		}
	}()

	return s
}

// Stop terminates the background cleanup goroutine.
func (s *MemoryStore) Stop() {
	close(s.stopCh)
}

// Allow implements Store. An absent or expired entry resets to count 1
// with a fresh window; under the cap the count increments; at or over
// the cap the attempt is rejected until the window resets.
func (s *MemoryStore) Allow(_ context.Context, key string) (Result, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(s.window)}
		s.entries[key] = e
		return Result{Allowed: true, Remaining: s.max - 1, ResetAt: e.resetAt}, nil
	}

	if e.count >= s.max {
		return Result{Allowed: false, Remaining: 0, ResetAt: e.resetAt}, nil
	}

	e.count++
	return Result{Allowed: true, Remaining: s.max - e.count, ResetAt: e.resetAt}, nil
}

// cleanup drops entries whose window has passed.
func (s *MemoryStore) cleanup() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if now.After(e.resetAt) {
			delete(s.entries, key)
		}
	}
}
