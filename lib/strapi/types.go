// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import "strings"

// User is a registered account on the content repository.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Role is the user's assigned role. The name is an open string domain:
// the repository can grow new roles without breaking older clients, so
// unrecognized names are never rejected — the dashboard maps them to a
// default descriptor.
type Role struct {
	Name string `json:"name"`
}

// Course is a catalog entry with its ordered modules.
type Course struct {
	ID int `json:"id"`

	// DocumentID is the stable opaque routing key. It is immutable
	// and the only valid key for re-fetching a specific course.
	DocumentID string `json:"documentId"`

	Title       string          `json:"title"`
	Description []RichTextBlock `json:"description"`
	Instructor  string          `json:"instructor"`
	Level       string          `json:"level"`

	// DurationHours is the total course length, already formatted by
	// the repository (e.g. "12"). Displayed as "<n> hours".
	DurationHours string `json:"duration"`

	Thumbnail *Media `json:"thumbnail"`

	// Modules preserve authoring order. Order is significant and
	// round-trips unchanged from the repository's response.
	Modules []Module `json:"modules"`
}

// Module is an ordered unit within a course, optionally carrying a
// video asset.
type Module struct {
	ID    int    `json:"id"`
	Title string `json:"title"`

	// DurationLabel is a display string like "45 min".
	DurationLabel string `json:"duration"`

	Video *Media `json:"video"`
}

// Media references a remote asset by URL. The URL may be host-relative
// (served by the repository) or fully qualified (external storage);
// resolve it through a media.Resolver before use.
type Media struct {
	URL string `json:"url"`
}

// RichTextBlock is one block of the repository's structured rich text.
// The client treats it as opaque apart from flattening its text leaves
// for terminal rendering.
type RichTextBlock struct {
	Children []RichTextChild `json:"children"`
}

// RichTextChild is a text leaf within a rich text block.
type RichTextChild struct {
	Text string `json:"text"`
}

// PlainText concatenates the block's text leaves, separated by a
// single space, producing a rendering-ready line.
func (block RichTextBlock) PlainText() string {
	texts := make([]string, 0, len(block.Children))
	for _, child := range block.Children {
		texts = append(texts, child.Text)
	}
	return strings.Join(texts, " ")
}

// DescriptionText flattens the course description into plain
// paragraphs separated by blank lines. Empty blocks are dropped.
func (course Course) DescriptionText() string {
	var paragraphs []string
	for _, block := range course.Description {
		if line := strings.TrimSpace(block.PlainText()); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
