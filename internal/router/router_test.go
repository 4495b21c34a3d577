// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devfolio/internal/content"
	"devfolio/internal/handlers"
	"devfolio/internal/mail"
	"devfolio/internal/ratelimit"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	limiter := ratelimit.NewMemoryStore(5, time.Hour)
	t.Cleanup(limiter.Stop)

	blog := handlers.NewBlog(content.NewLoader(t.TempDir()))
	contact := handlers.NewContact(limiter, mail.NewDispatcherWithChain(), "owner@example.com", "noreply@example.com")
	return New(blog, contact)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestContactRejectsNonPOST(t *testing.T) {
	router := newTestRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(method, "/api/contact", nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s /api/contact: got %d, want 405", method, rr.Code)
		}
	}
}

func TestPostsRouteRegistered(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/posts: got %d, want 200", rr.Code)
	}
}

func TestFeaturedBeatsSlugRoute(t *testing.T) {
	router := newTestRouter(t)

	// /api/posts/featured must hit the featured handler (200 with an
	// empty list), not fall through to the {slug} handler's 404.
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/posts/featured", nil))
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/posts/featured: got %d, want 200", rr.Code)
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
}
