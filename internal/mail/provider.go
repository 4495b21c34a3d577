// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mail delivers contact-form emails through transactional email
// providers (Resend, SendGrid, Postmark). Each provider implements the
// Provider interface; the Dispatcher runs an ordered chain until one
// delivery succeeds.
package mail

import (
	"context"
	"time"
)

// Message is one outbound email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Provider sends one message through a transactional email API and
// returns the provider's message identifier.
type Provider interface {
	Send(ctx context.Context, msg Message) (string, error)

	// Name returns the provider identifier (e.g., "resend", "sendgrid").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}

// sendTimeout bounds each provider HTTP call.
const sendTimeout = 15 * time.Second
