// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ratelimit enforces a fixed-window submission cap per client
// identifier. The Store interface is injected into the contact handler
// so tests run against the in-memory map and multi-instance deployments
// can share counters through Valkey.
package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of one rate-limit check.
type Result struct {
	Allowed   bool
	Remaining int       // submissions left in the current window
	ResetAt   time.Time // when the window resets
}

// Store counts submissions per client key. Allow records the attempt
// and reports whether it is within the cap. Implementations choose
// their own atomicity: the memory store tolerates the same-key read
// race, the Valkey store increments atomically.
type Store interface {
	Allow(ctx context.Context, key string) (Result, error)
}
