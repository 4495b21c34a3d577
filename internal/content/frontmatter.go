// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"devfolio/internal/models"
)

// frontMatter is the YAML metadata block at the head of a content file.
type frontMatter struct {
	Title       string      `yaml:"title"`
	Excerpt     string      `yaml:"excerpt"`
	PublishedAt string      `yaml:"publishedAt"`
	UpdatedAt   string      `yaml:"updatedAt"`
	Category    string      `yaml:"category"`
	Tags        []string    `yaml:"tags"`
	Featured    bool        `yaml:"featured"`
	CoverImage  string      `yaml:"coverImage"`
	SEO         *models.SEO `yaml:"seo"`
}

// parsedFile is the result of splitting and decoding one content file.
type parsedFile struct {
	meta frontMatter
	body string
}

const fence = "---"

// parseFile splits raw file contents into front-matter and body and
// decodes the metadata. A file without a front-matter block parses as
// empty metadata with the whole file as body. Malformed YAML or an
// unterminated block is an error; the caller decides whether to skip
// the file.
func parseFile(raw []byte) (parsedFile, error) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")

	if !strings.HasPrefix(text, fence+"\n") && text != fence {
		return parsedFile{body: text}, nil
	}

	rest := strings.TrimPrefix(text, fence+"\n")

	// An immediately repeated fence is an empty metadata block.
	if strings.HasPrefix(rest, fence) {
		body := strings.TrimPrefix(strings.TrimPrefix(rest, fence), "\n")
		return parsedFile{body: body}, nil
	}

	idx := strings.Index(rest, "\n"+fence)
	if idx < 0 {
		return parsedFile{}, fmt.Errorf("unterminated front-matter block")
	}

	head := rest[:idx]
	body := rest[idx+len("\n"+fence):]
	// Drop the newline that followed the closing fence, if any.
	body = strings.TrimPrefix(body, "\n")

	var meta frontMatter
	if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
		return parsedFile{}, fmt.Errorf("decode front-matter: %w", err)
	}

	return parsedFile{meta: meta, body: body}, nil
}

// readingTime estimates reading minutes from word count, assuming 200
// words per minute, rounding up. Non-empty content always yields at
// least one minute.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + 199) / 200
}
