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

// resendProvider implements Provider using the Resend API
// (POST /emails).
type resendProvider struct {
	config ProviderConfig
	client *http.Client
}

// newResend creates a new Resend provider.
func newResend(cfg ProviderConfig) *resendProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.resend.com"
	}
	return &resendProvider{
		config: cfg,
		client: &http.Client{Timeout: sendTimeout},
	}
}

func (p *resendProvider) Name() string { return "resend" }

// Send posts the message to the Resend emails endpoint.
func (p *resendProvider) Send(ctx context.Context, msg Message) (string, error) {
	body := resendRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("resend marshal: %w", err)
	}

	url := p.config.BaseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("resend request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("resend read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr resendError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result resendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("resend unmarshal: %w", err)
	}
	return result.ID, nil
}

// --- Resend API types ---

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type resendResponse struct {
	ID string `json:"id"`
}

type resendError struct {
	Message string `json:"message"`
}
