// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"devfolio/internal/mail"
	"devfolio/internal/models"
	"devfolio/internal/ratelimit"
)

// fallbackClientID identifies requests that carry neither forwarded-IP
// nor real-IP headers.
const fallbackClientID = "unknown"

// emailTmpl renders the notification email. html/template escapes every
// field, so the trim-only sanitization upstream is safe to interpolate.
var emailTmpl = template.Must(template.New("contact").Parse(`<h2>New contact form submission</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<hr>
<p>{{.Message}}</p>`))

// Contact handles contact-form intake: rate check, validation,
// sanitization, and delivery dispatch.
type Contact struct {
	limiter    ratelimit.Store
	dispatcher *mail.Dispatcher
	to         string
	from       string
}

// NewContact creates the contact handler group. to and from are the
// notification recipient and the provider-registered sender address.
func NewContact(limiter ratelimit.Store, dispatcher *mail.Dispatcher, to, from string) *Contact {
	return &Contact{limiter: limiter, dispatcher: dispatcher, to: to, from: from}
}

// submitResponse is the success envelope.
type submitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// Submit processes POST /api/contact. Every failure mode maps to one
// entry of the error taxonomy; nothing escapes as a raw error.
func (c *Contact) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref := uuid.NewString()
	client := clientID(r)

	res, err := c.limiter.Allow(ctx, client)
	if err != nil {
		slog.Error("rate limit check failed", "ref", ref, "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", CodeInternalError, nil)
		return
	}
	if !res.Allowed {
		slog.Info("contact submission throttled", "ref", ref, "client", client, "resetAt", res.ResetAt)
		writeError(w, http.StatusTooManyRequests, "Too many submissions. Please try again later.", CodeRateLimited, nil)
		return
	}

	var sub models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "Request body must be valid JSON.", CodeValidationError,
			[]FieldError{{Field: "body", Message: "Malformed JSON payload."}})
		return
	}

	if details := validateSubmission(&sub); len(details) > 0 {
		writeError(w, http.StatusBadRequest, "Submission failed validation.", CodeValidationError, details)
		return
	}

	sub.Sanitize()

	msg, err := buildMessage(&sub, c.to, c.from)
	if err != nil {
		slog.Error("render contact email", "ref", ref, "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.", CodeInternalError, nil)
		return
	}

	id, err := c.dispatcher.Send(ctx, msg)
	if err != nil {
		// Provider detail stays in the dispatcher's logs.
		slog.Error("contact delivery failed", "ref", ref, "client", client)
		writeError(w, http.StatusInternalServerError, "Failed to send your message. Please try again later.", CodeEmailSendError, nil)
		return
	}

	slog.Info("contact submission delivered", "ref", ref, "client", client, "messageId", id)
	writeJSON(w, http.StatusOK, submitResponse{
		Success:   true,
		Message:   "Thanks for reaching out! I'll get back to you soon.",
		MessageID: id,
	})
}

// buildMessage renders the submission into an outbound email.
func buildMessage(sub *models.ContactSubmission, to, from string) (mail.Message, error) {
	var html strings.Builder
	if err := emailTmpl.Execute(&html, sub); err != nil {
		return mail.Message{}, err
	}

	text := "New contact form submission\n\n" +
		"From: " + sub.Name + " <" + sub.Email + ">\n" +
		"Subject: " + sub.Subject + "\n\n" +
		sub.Message + "\n"

	return mail.Message{
		From:    from,
		To:      to,
		ReplyTo: sub.Email,
		Subject: "[Portfolio] " + sub.Subject,
		HTML:    html.String(),
		Text:    text,
	}, nil
}

// clientID derives the rate-limit key from proxy headers: the first
// X-Forwarded-For hop, else X-Real-IP, else a fixed fallback.
func clientID(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	return fallbackClientID
}
