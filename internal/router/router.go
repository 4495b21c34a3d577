// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// portfolio backend.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/handlers"
	"devfolio/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(blog *handlers.Blog, contact *handlers.Contact) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Blog read API. /posts/featured must register before the
		// {slug} routes so the literal path wins.
		r.Get("/posts", blog.List)
		r.Get("/posts/featured", blog.Featured)
		r.Get("/posts/{slug}", blog.Get)
		r.Get("/posts/{slug}/related", blog.Related)
		r.Get("/posts/{slug}/adjacent", blog.Adjacent)
		r.Get("/posts/{slug}/html", blog.HTML)
		r.Get("/tags", blog.Tags)
		r.Get("/categories", blog.Categories)

		// Contact intake. chi answers 405 for any other method on
		// this path.
		r.Post("/contact", contact.Submit)
	})

	return r
}

// healthHandler reports service liveness.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
