// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content translates a directory of flat content files into
// queryable Post records. Posts are materialized fresh on every query;
// there is no cache and no lock, since files are treated as immutable
// for the life of the process. Per-file read or parse failures are
// logged and the file excluded — data-quality problems never surface
// to callers.
package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"devfolio/internal/models"
	"devfolio/internal/slug"
)

const fileExt = ".md"

// Loader reads posts from a content directory.
type Loader struct {
	dir string
}

// NewLoader creates a Loader rooted at dir. The directory is created
// lazily on first use if it does not exist.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// ListSlugs enumerates the slugs of all content files. A missing
// content directory is created and yields an empty list; only a
// directory that cannot be created is an error.
func (l *Loader) ListSlugs() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read content dir: %w", err)
		}
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			return nil, fmt.Errorf("create content dir: %w", err)
		}
		return []string{}, nil
	}

	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(e.Name(), fileExt))
	}
	return slugs, nil
}

// GetBySlug loads a single post. Returns nil when the slug is invalid,
// the file is absent, or the file fails to parse — absence, not an error.
func (l *Loader) GetBySlug(s string) *models.Post {
	if !slug.IsValid(s) {
		return nil
	}

	raw, err := os.ReadFile(filepath.Join(l.dir, s+fileExt))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("content file unreadable", "slug", s, "error", err)
		}
		return nil
	}

	parsed, err := parseFile(raw)
	if err != nil {
		slog.Warn("content file skipped", "slug", s, "error", err)
		return nil
	}

	return l.assemble(s, parsed)
}

// assemble builds the full Post from a parsed file: category resolved
// against the fixed set, reading time derived from the body, the fixed
// site author attached.
func (l *Loader) assemble(s string, p parsedFile) *models.Post {
	return &models.Post{
		Slug:        s,
		Title:       p.meta.Title,
		Excerpt:     p.meta.Excerpt,
		Content:     p.body,
		PublishedAt: p.meta.PublishedAt,
		UpdatedAt:   p.meta.UpdatedAt,
		Category:    models.ResolveCategory(p.meta.Category),
		Tags:        p.meta.Tags,
		ReadingTime: readingTime(p.body),
		Featured:    p.meta.Featured,
		CoverImage:  p.meta.CoverImage,
		Author:      models.SiteAuthor,
		SEO:         p.meta.SEO,
	}
}

// GetAll loads every resolvable post, applies the filter, and sorts.
// A nil filter means no filtering, newest first.
func (l *Loader) GetAll(f *Filter) ([]models.Post, error) {
	slugs, err := l.ListSlugs()
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(slugs))
	for _, s := range slugs {
		if p := l.GetBySlug(s); p != nil {
			posts = append(posts, *p)
		}
	}

	if f != nil {
		posts = f.apply(posts)
	}
	sortPosts(posts, f)
	return posts, nil
}

// GetFeatured returns up to limit featured posts, newest first.
// A non-positive limit falls back to the default of 3.
func (l *Loader) GetFeatured(limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = 3
	}
	featured := true
	posts, err := l.GetAll(&Filter{Featured: &featured})
	if err != nil {
		return nil, err
	}
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// GetRelated scores every other post against ref: +3 for the same
// category, +1 per shared tag counted with multiplicity. Candidates are
// ordered by score descending; equal scores order by publish date
// (newest first), then slug, so output is deterministic regardless of
// directory enumeration order. Zero-score posts remain eligible — there
// is no minimum cutoff.
func (l *Loader) GetRelated(ref *models.Post, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = 3
	}

	posts, err := l.GetAll(nil)
	if err != nil {
		return nil, err
	}

	type scored struct {
		post  models.Post
		score int
	}
	candidates := make([]scored, 0, len(posts))
	for _, p := range posts {
		if p.Slug == ref.Slug {
			continue
		}
		candidates = append(candidates, scored{post: p, score: relatedScore(ref, &p)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		ti, tj := candidates[i].post.PublishedTime(), candidates[j].post.PublishedTime()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return candidates[i].post.Slug < candidates[j].post.Slug
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	related := make([]models.Post, len(candidates))
	for i, c := range candidates {
		related[i] = c.post
	}
	return related, nil
}

// relatedScore computes the weighted category/tag overlap between two posts.
func relatedScore(ref, other *models.Post) int {
	score := 0
	if ref.Category.Slug == other.Category.Slug {
		score += 3
	}
	for _, t := range other.Tags {
		if ref.HasTag(t) {
			score++
		}
	}
	return score
}

// GetAllTags returns the deduplicated union of every post's tags,
// sorted lexicographically.
func (l *Loader) GetAllTags() ([]string, error) {
	posts, err := l.GetAll(nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

// GetAdjacent locates the post in the default-sorted list (newest
// first) and returns its immediate neighbors. Either may be nil at a
// boundary, and both are nil when the slug is unknown.
func (l *Loader) GetAdjacent(s string) (prev, next *models.Post, err error) {
	posts, err := l.GetAll(nil)
	if err != nil {
		return nil, nil, err
	}

	for i := range posts {
		if posts[i].Slug != s {
			continue
		}
		if i > 0 {
			prev = &posts[i-1]
		}
		if i < len(posts)-1 {
			next = &posts[i+1]
		}
		return prev, next, nil
	}
	return nil, nil, nil
}
