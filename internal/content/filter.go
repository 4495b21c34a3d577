// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"sort"
	"strings"

	"devfolio/internal/models"
)

// SortField selects the field posts are ordered by.
type SortField string

const (
	SortByPublishedAt SortField = "publishedAt"
	SortByUpdatedAt   SortField = "updatedAt"
	SortByTitle       SortField = "title"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Filter narrows and orders the result of Loader.GetAll. All set
// filters are AND-combined. Zero values mean "no constraint"; Featured
// is a pointer so false is distinguishable from unset.
type Filter struct {
	Category string    // category slug equality
	Tags     []string  // match posts sharing at least one tag
	Query    string    // case-insensitive substring over title, excerpt, tags
	Featured *bool     // featured flag equality
	SortBy   SortField // default publishedAt
	Order    SortOrder // default desc (newest first)
}

// apply returns the posts passing every set filter.
func (f *Filter) apply(posts []models.Post) []models.Post {
	out := posts[:0]
	for _, p := range posts {
		if f.matches(&p) {
			out = append(out, p)
		}
	}
	return out
}

func (f *Filter) matches(p *models.Post) bool {
	if f.Category != "" && p.Category.Slug != f.Category {
		return false
	}

	if len(f.Tags) > 0 {
		found := false
		for _, t := range f.Tags {
			if p.HasTag(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Query != "" && !matchesQuery(p, f.Query) {
		return false
	}

	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}

	return true
}

// matchesQuery checks the free-text query against title, excerpt, and tags.
func matchesQuery(p *models.Post, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// sortPosts orders posts in place by the filter's sort field and
// direction, defaulting to publishedAt descending. Date fields compare
// as parsed timestamps, not strings.
func sortPosts(posts []models.Post, f *Filter) {
	field, order := SortByPublishedAt, OrderDesc
	if f != nil {
		if f.SortBy != "" {
			field = f.SortBy
		}
		if f.Order != "" {
			order = f.Order
		}
	}

	less := func(i, j int) bool {
		switch field {
		case SortByTitle:
			return posts[i].Title < posts[j].Title
		case SortByUpdatedAt:
			return posts[i].UpdatedTime().Before(posts[j].UpdatedTime())
		default:
			return posts[i].PublishedTime().Before(posts[j].PublishedTime())
		}
	}

	if order == OrderDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(posts, less)
}
