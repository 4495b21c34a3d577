// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category classifies a post. The set of categories is fixed at compile
// time; posts reference a category by slug in their front-matter.
type Category struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Categories is the fixed category set, in display order. The first
// entry doubles as the fallback for posts with a missing or unknown
// category slug.
var Categories = []Category{
	{
		Slug:        "web-development",
		Name:        "Web Development",
		Description: "Building things for the browser: frontend, backend, and everything between.",
		Color:       "#3b82f6",
	},
	{
		Slug:        "systems",
		Name:        "Systems & Infrastructure",
		Description: "Servers, networking, deployment, and the plumbing under the apps.",
		Color:       "#10b981",
	},
	{
		Slug:        "career",
		Name:        "Career",
		Description: "Lessons from working in software: teams, growth, and process.",
		Color:       "#f59e0b",
	},
	{
		Slug:        "notes",
		Name:        "Notes",
		Description: "Short write-ups, TILs, and things worth remembering.",
		Color:       "#8b5cf6",
	},
}

// ResolveCategory looks up a category by slug. Unknown or empty slugs
// resolve to the first category so a post always carries one.
func ResolveCategory(slug string) Category {
	for _, c := range Categories {
		if c.Slug == slug {
			return c
		}
	}
	return Categories[0]
}
