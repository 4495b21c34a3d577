// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP endpoints for the portfolio
// backend: the blog read API and the contact-form intake pipeline.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Machine-readable error codes, distinct from the human-facing message.
const (
	CodeRateLimited     = "RATE_LIMIT_EXCEEDED"
	CodeValidationError = "VALIDATION_ERROR"
	CodeEmailSendError  = "EMAIL_SEND_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeNotFound        = "NOT_FOUND"
)

// errorBody is the uniform failure envelope.
type errorBody struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

// writeJSON marshals v and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response", "error", err)
	}
}

// writeError writes the failure envelope.
func writeError(w http.ResponseWriter, status int, message, code string, details []FieldError) {
	writeJSON(w, status, errorBody{Error: message, Code: code, Details: details})
}
