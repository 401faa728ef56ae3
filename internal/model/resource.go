package model

import "time"

// Resource is a curated learning resource page rendered from markdown content.
type Resource struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
	Date        time.Time `json:"date"`
	HTMLContent string    `json:"html_content"`
	Content     string    `json:"-"`
}
