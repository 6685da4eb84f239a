// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package courseui

import (
	"fmt"
	"strings"

	"github.com/cps-academy/academy/lib/media"
	"github.com/cps-academy/academy/lib/strapi"
)

// PlainCourse renders a course as plain text for non-interactive
// output (--plain or a non-TTY stdout). Media URLs are resolved
// against the repository's media origin so they are directly usable.
func PlainCourse(course *strapi.Course, resolver media.Resolver) string {
	var builder strings.Builder

	builder.WriteString(course.Title + "\n")

	meta := []string{}
	if course.Level != "" {
		meta = append(meta, "level: "+course.Level)
	}
	if course.Instructor != "" {
		meta = append(meta, "instructor: "+course.Instructor)
	}
	if course.DurationHours != "" {
		meta = append(meta, "duration: "+course.DurationHours+" hours")
	}
	if len(meta) > 0 {
		builder.WriteString(strings.Join(meta, " · ") + "\n")
	}
	if course.Thumbnail != nil && course.Thumbnail.URL != "" {
		builder.WriteString("thumbnail: " + resolver.Resolve(course.Thumbnail.URL) + "\n")
	}

	if description := course.DescriptionText(); description != "" {
		builder.WriteString("\n" + description + "\n")
	}

	builder.WriteString("\n")
	if len(course.Modules) == 0 {
		builder.WriteString("No modules added yet.\n")
		return builder.String()
	}

	builder.WriteString(fmt.Sprintf("Modules (%d):\n", len(course.Modules)))
	for index, module := range course.Modules {
		line := fmt.Sprintf("%d. %s", index+1, module.Title)
		if module.DurationLabel != "" {
			line += " (" + module.DurationLabel + ")"
		}
		if module.Video != nil && module.Video.URL != "" {
			line += "\n   video: " + resolver.Resolve(module.Video.URL)
		}
		builder.WriteString(line + "\n")
	}
	return builder.String()
}
