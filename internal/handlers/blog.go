// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/content"
	"devfolio/internal/markdown"
	"devfolio/internal/models"
)

// Blog serves the read-only blog API backed by the flat-file loader.
type Blog struct {
	loader *content.Loader
}

// NewBlog creates the blog handler group.
func NewBlog(loader *content.Loader) *Blog {
	return &Blog{loader: loader}
}

// List serves GET /api/posts. Query parameters: category, tag
// (repeatable), q, featured, sortBy, order, limit.
func (b *Blog) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := &content.Filter{
		Category: q.Get("category"),
		Tags:     q["tag"],
		Query:    q.Get("q"),
		SortBy:   content.SortField(q.Get("sortBy")),
		Order:    content.SortOrder(q.Get("order")),
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true" || v == "1"
		filter.Featured = &featured
	}

	posts, err := b.loader.GetAll(filter)
	if err != nil {
		slog.Error("list posts", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.", CodeInternalError, nil)
		return
	}

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"posts":   posts,
		"total":   len(posts),
	})
}

// Get serves GET /api/posts/{slug}.
func (b *Blog) Get(w http.ResponseWriter, r *http.Request) {
	post := b.loader.GetBySlug(chi.URLParam(r, "slug"))
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found.", CodeNotFound, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "post": post})
}

// Related serves GET /api/posts/{slug}/related?limit=N.
func (b *Blog) Related(w http.ResponseWriter, r *http.Request) {
	post := b.loader.GetBySlug(chi.URLParam(r, "slug"))
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found.", CodeNotFound, nil)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	related, err := b.loader.GetRelated(post, limit)
	if err != nil {
		slog.Error("related posts", "slug", post.Slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.", CodeInternalError, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "posts": related})
}

// Adjacent serves GET /api/posts/{slug}/adjacent, the post's neighbors
// in the default newest-first ordering. Either side is null at a boundary.
func (b *Blog) Adjacent(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	if b.loader.GetBySlug(s) == nil {
		writeError(w, http.StatusNotFound, "Post not found.", CodeNotFound, nil)
		return
	}

	prev, next, err := b.loader.GetAdjacent(s)
	if err != nil {
		slog.Error("adjacent posts", "slug", s, "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.", CodeInternalError, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"previous": prev,
		"next":     next,
	})
}

// Featured serves GET /api/posts/featured?limit=N (default 3).
func (b *Blog) Featured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	posts, err := b.loader.GetFeatured(limit)
	if err != nil {
		slog.Error("featured posts", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.", CodeInternalError, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "posts": posts})
}

// Tags serves GET /api/tags: every tag in use, deduplicated and sorted.
func (b *Blog) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := b.loader.GetAllTags()
	if err != nil {
		slog.Error("list tags", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.", CodeInternalError, nil)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "tags": tags})
}

// Categories serves GET /api/categories: the fixed category set.
func (b *Blog) Categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "categories": models.Categories})
}

// HTML serves GET /api/posts/{slug}/html: the post body rendered to HTML.
func (b *Blog) HTML(w http.ResponseWriter, r *http.Request) {
	post := b.loader.GetBySlug(chi.URLParam(r, "slug"))
	if post == nil {
		writeError(w, http.StatusNotFound, "Post not found.", CodeNotFound, nil)
		return
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("render post body", "slug", post.Slug, "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.", CodeInternalError, nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "html": html})
}
