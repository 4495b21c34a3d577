// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"devfolio/internal/models"
)

// Validation limits for contact-form fields.
const (
	nameMinLen    = 2
	nameMaxLen    = 100
	subjectMinLen = 5
	subjectMaxLen = 200
	messageMinLen = 10
	messageMaxLen = 1000
)

// FieldError describes one validation failure for the caller to display.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validateSubmission checks all field constraints and returns every
// violation found. Fields are measured after trimming, matching what
// will actually be delivered.
func validateSubmission(s *models.ContactSubmission) []FieldError {
	var errs []FieldError

	if err := lengthError("name", strings.TrimSpace(s.Name), nameMinLen, nameMaxLen); err != nil {
		errs = append(errs, *err)
	}

	email := strings.TrimSpace(s.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required."})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Email must be a valid address."})
	}

	if err := lengthError("subject", strings.TrimSpace(s.Subject), subjectMinLen, subjectMaxLen); err != nil {
		errs = append(errs, *err)
	}
	if err := lengthError("message", strings.TrimSpace(s.Message), messageMinLen, messageMaxLen); err != nil {
		errs = append(errs, *err)
	}

	return errs
}

// lengthError checks a field's rune count against its bounds.
func lengthError(field, value string, min, max int) *FieldError {
	n := utf8.RuneCountInString(value)
	if n < min {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at least %d characters.", title(field), min),
		}
	}
	if n > max {
		return &FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be at most %d characters.", title(field), max),
		}
	}
	return nil
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
