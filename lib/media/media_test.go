// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package media

import (
	"strings"
	"testing"
)

func TestResolveRelative(t *testing.T) {
	resolver := Resolver{Origin: "http://localhost:1337"}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"leading slash", "/uploads/intro.mp4", "http://localhost:1337/uploads/intro.mp4"},
		{"no leading slash", "uploads/intro.mp4", "http://localhost:1337/uploads/intro.mp4"},
		{"nested path", "/uploads/2026/03/thumb.png", "http://localhost:1337/uploads/2026/03/thumb.png"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := resolver.Resolve(test.path); got != test.want {
				t.Errorf("Resolve(%q) = %q, want %q", test.path, got, test.want)
			}
		})
	}
}

func TestResolveTrailingSlashOrigin(t *testing.T) {
	// Exactly one separator regardless of how the origin is written.
	for _, origin := range []string{"http://cms.example.com", "http://cms.example.com/", "http://cms.example.com//"} {
		resolver := Resolver{Origin: origin}
		got := resolver.Resolve("/uploads/a.png")
		if got != "http://cms.example.com/uploads/a.png" {
			t.Errorf("origin %q: Resolve = %q", origin, got)
		}
		if strings.Contains(strings.TrimPrefix(got, "http://"), "//") {
			t.Errorf("origin %q: doubled separator in %q", origin, got)
		}
	}
}

func TestResolveAbsolutePassthrough(t *testing.T) {
	resolver := Resolver{Origin: "http://localhost:1337"}

	for _, url := range []string{
		"http://cdn.example.com/v/1.mp4",
		"https://storage.example.com/bucket/file.png",
		"s3://bucket/key",
	} {
		if got := resolver.Resolve(url); got != url {
			t.Errorf("Resolve(%q) = %q, want unchanged", url, got)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	resolver := Resolver{Origin: "http://localhost:1337"}
	if got := resolver.Resolve(""); got != "" {
		t.Errorf("Resolve(\"\") = %q, want empty", got)
	}
}

func TestResolveColonishPathsNotTreatedAsAbsolute(t *testing.T) {
	resolver := Resolver{Origin: "http://localhost:1337"}

	// A leading colon or digit-first segment is not a valid scheme, so
	// these join with the origin rather than passing through.
	tests := map[string]string{
		":weird":         "http://localhost:1337/:weird",
		"/a:b/c":         "http://localhost:1337/a:b/c",
		"1337:not-a-url": "http://localhost:1337/1337:not-a-url",
	}
	for path, want := range tests {
		if got := resolver.Resolve(path); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", path, got, want)
		}
	}
}
