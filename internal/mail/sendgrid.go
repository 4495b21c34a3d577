// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// sendgridProvider implements Provider using the SendGrid v3 Mail Send
// API (POST /v3/mail/send).
type sendgridProvider struct {
	config ProviderConfig
	client *http.Client
}

// newSendgrid creates a new SendGrid provider.
func newSendgrid(cfg ProviderConfig) *sendgridProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.sendgrid.com"
	}
	return &sendgridProvider{
		config: cfg,
		client: &http.Client{Timeout: sendTimeout},
	}
}

func (p *sendgridProvider) Name() string { return "sendgrid" }

// Send posts the message to the SendGrid mail send endpoint. SendGrid
// answers 202 with no body; the message id arrives in the X-Message-Id
// response header.
func (p *sendgridProvider) Send(ctx context.Context, msg Message) (string, error) {
	body := sendgridRequest{
		Personalizations: []sendgridPersonalization{
			{To: []sendgridAddress{{Email: msg.To}}},
		},
		From:    sendgridAddress{Email: msg.From},
		ReplyTo: &sendgridAddress{Email: msg.ReplyTo},
		Subject: msg.Subject,
		Content: []sendgridContent{
			{Type: "text/plain", Value: msg.Text},
			{Type: "text/html", Value: msg.HTML},
		},
	}
	if msg.ReplyTo == "" {
		body.ReplyTo = nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("sendgrid marshal: %w", err)
	}

	url := p.config.BaseURL + "/v3/mail/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("sendgrid request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sendgrid http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("sendgrid API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return resp.Header.Get("X-Message-Id"), nil
}

// --- SendGrid v3 API types ---

type sendgridAddress struct {
	Email string `json:"email"`
}

type sendgridPersonalization struct {
	To []sendgridAddress `json:"to"`
}

type sendgridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendgridRequest struct {
	Personalizations []sendgridPersonalization `json:"personalizations"`
	From             sendgridAddress           `json:"from"`
	ReplyTo          *sendgridAddress          `json:"reply_to,omitempty"`
	Subject          string                    `json:"subject"`
	Content          []sendgridContent         `json:"content"`
}
