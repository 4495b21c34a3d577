// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Content
	ContentDir string

	// Contact form delivery
	EmailProvider string // "resend", "sendgrid", "postmark"; empty or unknown enables the default fallback chain
	ContactTo     string // recipient of contact-form emails
	ContactFrom   string // sender address registered with the providers

	ResendAPIKey   string
	SendgridAPIKey string
	PostmarkToken  string

	// Contact rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration

	// Valkey (Redis-compatible) rate-limit store; empty host means the
	// in-memory store is used instead.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first if present. Returns an error if critical values are
// missing in production mode.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ContentDir: envOrDefault("CONTENT_DIR", "content/blog"),

		EmailProvider: os.Getenv("EMAIL_PROVIDER"),
		ContactTo:     envOrDefault("CONTACT_TO", "hello@localhost"),
		ContactFrom:   envOrDefault("CONTACT_FROM", "Portfolio <noreply@localhost>"),

		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		PostmarkToken:  os.Getenv("POSTMARK_SERVER_TOKEN"),

		RateLimitMax:    envIntOrDefault("RATE_LIMIT_MAX", 5),
		RateLimitWindow: time.Duration(envIntOrDefault("RATE_LIMIT_WINDOW_SECONDS", 3600)) * time.Second,

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	if cfg.RateLimitMax < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be at least 1, got %d", cfg.RateLimitMax)
	}

	if cfg.Env == "production" {
		if cfg.ResendAPIKey == "" && cfg.SendgridAPIKey == "" && cfg.PostmarkToken == "" {
			return nil, fmt.Errorf("at least one email provider key must be set in production")
		}
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the Valkey address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envIntOrDefault reads an integer environment variable, returning a
// fallback if unset, empty, or unparsable.
func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
