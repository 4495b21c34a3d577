// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so tests see pure defaults.
// envOrDefault treats empty the same as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV", "CONTENT_DIR",
		"EMAIL_PROVIDER", "CONTACT_TO", "CONTACT_FROM",
		"RESEND_API_KEY", "SENDGRID_API_KEY", "POSTMARK_SERVER_TOKEN",
		"RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW_SECONDS",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr: got %q, want %q", cfg.Addr(), "0.0.0.0:8080")
	}
	if cfg.Env != "development" || !cfg.IsDev() {
		t.Errorf("Env: got %q, want development", cfg.Env)
	}
	if cfg.ContentDir != "content/blog" {
		t.Errorf("ContentDir: got %q, want content/blog", cfg.ContentDir)
	}
	if cfg.RateLimitMax != 5 {
		t.Errorf("RateLimitMax: got %d, want 5", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != time.Hour {
		t.Errorf("RateLimitWindow: got %v, want 1h", cfg.RateLimitWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("EMAIL_PROVIDER", "sendgrid")
	t.Setenv("RATE_LIMIT_MAX", "10")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Port: got %q, want 9000", cfg.Port)
	}
	if cfg.EmailProvider != "sendgrid" {
		t.Errorf("EmailProvider: got %q, want sendgrid", cfg.EmailProvider)
	}
	if cfg.RateLimitMax != 10 {
		t.Errorf("RateLimitMax: got %d, want 10", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != time.Minute {
		t.Errorf("RateLimitWindow: got %v, want 1m", cfg.RateLimitWindow)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.RateLimitMax != 5 {
		t.Errorf("RateLimitMax: got %d, want default 5", cfg.RateLimitMax)
	}
}

func TestLoadProductionRequiresProviderKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load() in production without provider keys should fail")
	}

	t.Setenv("RESEND_API_KEY", "re_test")
	if _, err := Load(); err != nil {
		t.Fatalf("Load() with a provider key should succeed, got %v", err)
	}
}
