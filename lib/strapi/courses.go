// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// courseDetailPopulate selects exactly what the course viewer needs in
// one round trip: the thumbnail URL, the ordered modules, and each
// module's video URL.
const courseDetailPopulate = "populate[thumbnail][fields][0]=url" +
	"&populate[modules][populate][video][fields][0]=url"

// Courses fetches the course catalog with all relations populated.
// Works anonymously on repositories that permit catalog browsing;
// include a token for gated catalogs.
func (client *Client) Courses(ctx context.Context) ([]Course, error) {
	body, err := client.do(ctx, http.MethodGet, "/api/courses?populate=*", nil)
	if err != nil {
		return nil, err
	}

	data, err := unwrapData(body, "/api/courses")
	if err != nil {
		return nil, err
	}

	var courses []Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, malformedError("decoding course list: %v", err)
	}
	for _, course := range courses {
		if course.DocumentID == "" {
			return nil, malformedError("course %d has no documentId", course.ID)
		}
	}
	return courses, nil
}

// CourseByID fetches a single course by its stable document ID,
// together with its ordered modules and their video references.
// Protected: requires a bearer token. Returns a not-found *APIError
// when no such document exists.
func (client *Client) CourseByID(ctx context.Context, documentID string) (*Course, error) {
	if documentID == "" {
		return nil, validationError("documentId must not be empty")
	}

	path := "/api/courses/" + url.PathEscape(documentID) + "?" + courseDetailPopulate
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	data, err := unwrapData(body, path)
	if err != nil {
		return nil, err
	}

	var course Course
	if err := json.Unmarshal(data, &course); err != nil {
		return nil, malformedError("decoding course %s: %v", documentID, err)
	}
	if course.DocumentID == "" {
		return nil, malformedError("course %s response has no documentId", documentID)
	}
	return &course, nil
}
