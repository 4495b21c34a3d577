// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"devfolio/internal/mail"
	"devfolio/internal/models"
	"devfolio/internal/ratelimit"
)

// stubProvider returns canned Send results and counts calls.
type stubProvider struct {
	name  string
	id    string
	err   error
	calls int
	last  mail.Message
}

func (s *stubProvider) Send(_ context.Context, msg mail.Message) (string, error) {
	s.calls++
	s.last = msg
	return s.id, s.err
}

func (s *stubProvider) Name() string { return s.name }

func newContactHandler(t *testing.T, providers ...mail.Provider) *Contact {
	t.Helper()
	limiter := ratelimit.NewMemoryStore(5, time.Hour)
	t.Cleanup(limiter.Stop)
	return NewContact(limiter, mail.NewDispatcherWithChain(providers...), "owner@example.com", "Portfolio <noreply@example.com>")
}

func postContact(t *testing.T, h *Contact, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/contact", &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.Submit(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&m); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return m
}

func TestSubmitSuccess(t *testing.T) {
	provider := &stubProvider{name: "resend", id: "msg-1"}
	h := newContactHandler(t, provider)

	rr := postContact(t, h, validSubmission(), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", rr.Code, rr.Body)
	}

	body := decodeBody(t, rr)
	if body["success"] != true {
		t.Error("success: got false")
	}
	if body["messageId"] != "msg-1" {
		t.Errorf("messageId: got %v", body["messageId"])
	}
	if provider.calls != 1 {
		t.Errorf("provider calls: got %d, want 1", provider.calls)
	}
}

func TestSubmitFallbackProviderMessageID(t *testing.T) {
	primary := &stubProvider{name: "resend", err: errors.New("rate limited upstream")}
	fallback := &stubProvider{name: "sendgrid", id: "abc"}
	h := newContactHandler(t, primary, fallback)

	rr := postContact(t, h, validSubmission(), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if body := decodeBody(t, rr); body["messageId"] != "abc" {
		t.Errorf("messageId: got %v, want the fallback's abc", body["messageId"])
	}
	if fallback.calls != 1 {
		t.Errorf("fallback attempted %d times, want exactly 1", fallback.calls)
	}
}

func TestSubmitDeliveryError(t *testing.T) {
	h := newContactHandler(t, &stubProvider{name: "resend", err: errors.New("provider exploded")})

	rr := postContact(t, h, validSubmission(), nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["code"] != CodeEmailSendError {
		t.Errorf("code: got %v, want %s", body["code"], CodeEmailSendError)
	}
	// Provider error detail must not reach the caller.
	if strings.Contains(rr.Body.String(), "exploded") {
		t.Error("response leaks provider error detail")
	}
}

func TestSubmitValidationError(t *testing.T) {
	h := newContactHandler(t, &stubProvider{name: "resend", id: "x"})

	sub := validSubmission()
	sub.Message = "too short" // 9 characters, one below the minimum
	rr := postContact(t, h, sub, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	body := decodeBody(t, rr)
	if body["code"] != CodeValidationError {
		t.Errorf("code: got %v", body["code"])
	}
	details, ok := body["details"].([]any)
	if !ok || len(details) == 0 {
		t.Errorf("details: got %v, want per-field entries", body["details"])
	}
}

func TestSubmitMalformedJSON(t *testing.T) {
	h := newContactHandler(t, &stubProvider{name: "resend", id: "x"})

	rr := postContact(t, h, "{not json", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rr.Code)
	}
	if body := decodeBody(t, rr); body["code"] != CodeValidationError {
		t.Errorf("code: got %v", body["code"])
	}
}

func TestSubmitRateLimit(t *testing.T) {
	limiter := ratelimit.NewMemoryStore(5, time.Hour)
	t.Cleanup(limiter.Stop)
	provider := &stubProvider{name: "resend", id: "ok"}
	h := NewContact(limiter, mail.NewDispatcherWithChain(provider), "owner@example.com", "noreply@example.com")

	headers := map[string]string{"X-Forwarded-For": "198.51.100.7"}
	for i := 1; i <= 5; i++ {
		rr := postContact(t, h, validSubmission(), headers)
		if rr.Code != http.StatusOK {
			t.Fatalf("submission %d: got %d, want 200", i, rr.Code)
		}
	}

	rr := postContact(t, h, validSubmission(), headers)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("6th submission: got %d, want 429", rr.Code)
	}
	if body := decodeBody(t, rr); body["code"] != CodeRateLimited {
		t.Errorf("code: got %v, want %s", body["code"], CodeRateLimited)
	}
	// Delivery is never attempted for a throttled request.
	if provider.calls != 5 {
		t.Errorf("provider calls: got %d, want 5", provider.calls)
	}

	// A different client is unaffected.
	rr = postContact(t, h, validSubmission(), map[string]string{"X-Forwarded-For": "198.51.100.8"})
	if rr.Code != http.StatusOK {
		t.Errorf("other client: got %d, want 200", rr.Code)
	}
}

func TestSubmitSanitizesBeforeDelivery(t *testing.T) {
	provider := &stubProvider{name: "resend", id: "ok"}
	h := newContactHandler(t, provider)

	sub := models.ContactSubmission{
		Name:    "  Jamie Doe  ",
		Email:   "  JAMIE@Example.COM ",
		Subject: "  Project inquiry ",
		Message: "  I'd like to talk about a project.  ",
	}
	rr := postContact(t, h, sub, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if provider.last.ReplyTo != "jamie@example.com" {
		t.Errorf("reply-to: got %q, want lower-cased trimmed email", provider.last.ReplyTo)
	}
	if !strings.Contains(provider.last.Subject, "Project inquiry") {
		t.Errorf("subject: got %q", provider.last.Subject)
	}
}

func TestSubmitEscapesHTMLInEmailBody(t *testing.T) {
	provider := &stubProvider{name: "resend", id: "ok"}
	h := newContactHandler(t, provider)

	sub := validSubmission()
	sub.Message = `<script>alert("xss")</script> plus enough text`
	rr := postContact(t, h, sub, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	if strings.Contains(provider.last.HTML, "<script>") {
		t.Error("email HTML must escape submitted markup")
	}
}

func TestClientID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if got := clientID(req); got != fallbackClientID {
		t.Errorf("no headers: got %q, want %q", got, fallbackClientID)
	}

	req.Header.Set("X-Real-IP", "203.0.113.5")
	if got := clientID(req); got != "203.0.113.5" {
		t.Errorf("X-Real-IP: got %q", got)
	}

	// Forwarded-IP wins, first hop only.
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	if got := clientID(req); got != "198.51.100.1" {
		t.Errorf("X-Forwarded-For: got %q", got)
	}
}
