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

// postmarkProvider implements Provider using the Postmark API
// (POST /email).
type postmarkProvider struct {
	config ProviderConfig
	client *http.Client
}

// newPostmark creates a new Postmark provider. APIKey carries the
// server token.
func newPostmark(cfg ProviderConfig) *postmarkProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.postmarkapp.com"
	}
	return &postmarkProvider{
		config: cfg,
		client: &http.Client{Timeout: sendTimeout},
	}
}

func (p *postmarkProvider) Name() string { return "postmark" }

// Send posts the message to the Postmark email endpoint.
func (p *postmarkProvider) Send(ctx context.Context, msg Message) (string, error) {
	body := postmarkRequest{
		From:     msg.From,
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("postmark marshal: %w", err)
	}

	url := p.config.BaseURL + "/email"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("postmark request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", p.config.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("postmark http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("postmark read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr postmarkError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("postmark API error (status %d, code %d): %s", resp.StatusCode, apiErr.ErrorCode, apiErr.Message)
		}
		return "", fmt.Errorf("postmark API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result postmarkResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("postmark unmarshal: %w", err)
	}
	return result.MessageID, nil
}

// --- Postmark API types ---

type postmarkRequest struct {
	From     string `json:"From"`
	To       string `json:"To"`
	ReplyTo  string `json:"ReplyTo,omitempty"`
	Subject  string `json:"Subject"`
	HTMLBody string `json:"HtmlBody,omitempty"`
	TextBody string `json:"TextBody,omitempty"`
}

type postmarkResponse struct {
	MessageID string `json:"MessageID"`
}

type postmarkError struct {
	ErrorCode int    `json:"ErrorCode"`
	Message   string `json:"Message"`
}
