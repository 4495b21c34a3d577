// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// ContactSubmission is one inbound contact-form submission. Field
// constraints are enforced by the handler before the submission reaches
// the delivery stage.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Sanitize trims all fields and lower-cases the email address. This is
// the only transformation applied before delivery; it is not an XSS
// boundary — the email template is responsible for escaping.
func (s *ContactSubmission) Sanitize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
}
