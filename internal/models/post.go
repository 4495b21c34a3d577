// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SEO holds optional per-post metadata overrides consumed by the
// page-rendering layer.
type SEO struct {
	Title       string   `json:"title,omitempty" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords"`
}

// SocialLinks groups an author's public profiles.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Author describes who wrote a post. The site has a single author, so
// every post carries the same record.
type Author struct {
	Name   string      `json:"name"`
	Bio    string      `json:"bio"`
	Avatar string      `json:"avatar"`
	Social SocialLinks `json:"social"`
}

// SiteAuthor is the fixed author record attached to every post.
var SiteAuthor = Author{
	Name:   "Alex Moran",
	Bio:    "Full-stack developer writing about the web, infrastructure, and the craft of software.",
	Avatar: "/images/avatar.jpg",
	Social: SocialLinks{
		GitHub:   "https://github.com/alexmoran",
		LinkedIn: "https://linkedin.com/in/alexmoran",
		Website:  "https://alexmoran.dev",
	},
}

// Post is one published article, materialized from a content file.
// Category is always resolved (never the zero value) and ReadingTime is
// derived from the body at load time, never authored.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	PublishedAt string   `json:"publishedAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags"`
	ReadingTime int      `json:"readingTime"`
	Featured    bool     `json:"featured"`
	CoverImage  string   `json:"coverImage,omitempty"`
	Author      Author   `json:"author"`
	SEO         *SEO     `json:"seo,omitempty"`
}

// dateLayouts are tried in order when parsing post dates. Content files
// are hand-written, so both full timestamps and plain dates appear.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a front-matter date string. Returns the zero time if
// the string matches no known layout, so a bad date degrades to "sorts
// last" rather than failing the post.
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// PublishedTime returns the parsed publication timestamp.
func (p *Post) PublishedTime() time.Time {
	return ParseDate(p.PublishedAt)
}

// UpdatedTime returns the parsed update timestamp, falling back to the
// publication time when no update date is set.
func (p *Post) UpdatedTime() time.Time {
	if p.UpdatedAt == "" {
		return p.PublishedTime()
	}
	return ParseDate(p.UpdatedAt)
}

// HasTag reports whether the post carries the given tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
