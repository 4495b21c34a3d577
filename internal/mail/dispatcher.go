// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ErrDeliveryFailed is returned when every provider in the chain failed.
// Provider error detail stays in the server logs; callers see only this.
var ErrDeliveryFailed = errors.New("mail: delivery failed")

// defaultChain is the hardcoded fallback order used when no provider is
// configured or the configured name is unknown: try Resend, and only if
// that attempt fails, try SendGrid. There is no third fallback.
var defaultChain = []string{"resend", "sendgrid"}

// Dispatcher runs an ordered chain of providers until one delivery
// succeeds.
type Dispatcher struct {
	chain []Provider
}

// NewDispatcher builds the chain from the configured provider name. A
// recognised name yields a single-provider chain; an empty or unknown
// name yields the default resend→sendgrid fallback chain. Providers
// without an API key are skipped.
func NewDispatcher(configured string, configs map[string]ProviderConfig) *Dispatcher {
	providers := make(map[string]Provider)
	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "resend":
			providers[name] = newResend(cfg)
		case "sendgrid":
			providers[name] = newSendgrid(cfg)
		case "postmark":
			providers[name] = newPostmark(cfg)
		}
	}

	var chain []Provider
	if p, ok := providers[configured]; ok {
		chain = []Provider{p}
	} else {
		if configured != "" {
			slog.Warn("unknown email provider, using default chain", "provider", configured)
		}
		for _, name := range defaultChain {
			if p, ok := providers[name]; ok {
				chain = append(chain, p)
			}
		}
	}

	return &Dispatcher{chain: chain}
}

// NewDispatcherWithChain builds a dispatcher over an explicit provider
// list. Used by tests to inject fakes.
func NewDispatcherWithChain(chain ...Provider) *Dispatcher {
	return &Dispatcher{chain: chain}
}

// Chain returns the names of the providers in dispatch order.
func (d *Dispatcher) Chain() []string {
	names := make([]string, len(d.chain))
	for i, p := range d.chain {
		names[i] = p.Name()
	}
	return names
}

// Send attempts delivery through the chain in order, stopping at the
// first success. Every failure is logged server-side; the returned
// error never carries provider detail. An empty provider message id is
// replaced with a generated one so callers always get a reference.
func (d *Dispatcher) Send(ctx context.Context, msg Message) (string, error) {
	if len(d.chain) == 0 {
		slog.Error("no email providers configured")
		return "", ErrDeliveryFailed
	}

	for _, p := range d.chain {
		id, err := p.Send(ctx, msg)
		if err != nil {
			slog.Error("email delivery attempt failed", "provider", p.Name(), "error", err)
			continue
		}
		if id == "" {
			id = uuid.NewString()
		}
		slog.Info("email delivered", "provider", p.Name(), "messageId", id)
		return id, nil
	}

	return "", fmt.Errorf("%w: all %d providers exhausted", ErrDeliveryFailed, len(d.chain))
}
