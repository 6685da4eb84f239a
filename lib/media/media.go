// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package media resolves content repository asset references into
// fetchable URLs.
//
// The repository returns media URLs in two forms: fully qualified
// (external storage providers) and host-relative (assets served by the
// repository itself, e.g. "/uploads/intro.mp4"). Relative paths must be
// joined with the configured media origin before they can be handed to
// a player or downloader.
package media

import "strings"

// Resolver turns possibly-relative asset paths into absolute URLs.
// The zero value resolves relative paths against an empty origin,
// which is never useful — construct one from the client configuration.
type Resolver struct {
	// Origin is the base URL of the content repository's asset host
	// (e.g. "http://localhost:1337"). A trailing slash is tolerated
	// and stripped during resolution.
	Origin string
}

// Resolve returns an absolute URL for the given asset path. Empty
// input resolves to empty. Paths that already carry a URI scheme are
// returned unchanged. Everything else is joined to the origin with
// exactly one separator, regardless of trailing/leading slashes on
// either side.
//
// Resolve is pure and total: malformed paths are passed through
// best-effort rather than rejected. Callers that need to reject bad
// URLs do so at the point of use.
func (r Resolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if hasScheme(path) {
		return path
	}
	origin := strings.TrimRight(r.Origin, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return origin + path
}

// hasScheme reports whether the path begins with a URI scheme per
// RFC 3986: an ASCII letter followed by letters, digits, "+", "-" or
// "." up to a ":". This catches http/https as well as schemes like
// s3 or file without hard-coding a list.
func hasScheme(path string) bool {
	for index, character := range path {
		switch {
		case character == ':':
			return index > 0
		case character >= 'a' && character <= 'z',
			character >= 'A' && character <= 'Z':
			// Always acceptable in a scheme.
		case character >= '0' && character <= '9',
			character == '+', character == '-', character == '.':
			if index == 0 {
				return false
			}
		default:
			return false
		}
	}
	return false
}
