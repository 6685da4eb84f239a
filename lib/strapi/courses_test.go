// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const courseDetailBody = `{
  "data": {
    "id": 7,
    "documentId": "abc123xyz",
    "title": "Competitive Programming Bootcamp",
    "description": [
      {"children": [{"text": "Learn algorithms"}, {"text": "from scratch."}]},
      {"children": [{"text": ""}]},
      {"children": [{"text": "Weekly contests included."}]}
    ],
    "instructor": "Tanvir Rahman",
    "level": "Beginner",
    "duration": "24",
    "thumbnail": {"url": "/uploads/bootcamp.png"},
    "modules": [
      {"id": 1, "title": "Big-O and Complexity", "duration": "40 min", "video": {"url": "/uploads/m1.mp4"}},
      {"id": 2, "title": "Sorting", "duration": "55 min", "video": {"url": "https://cdn.cps.academy/m2.mp4"}},
      {"id": 3, "title": "Reading List", "duration": "15 min"}
    ]
  }
}`

func TestCourseByID(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestedPath = request.URL.RequestURI()
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(courseDetailBody))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	course, err := client.CourseByID(context.Background(), "abc123xyz")
	if err != nil {
		t.Fatalf("CourseByID: %v", err)
	}

	if !strings.HasPrefix(requestedPath, "/api/courses/abc123xyz?") {
		t.Errorf("path = %q", requestedPath)
	}
	if !strings.Contains(requestedPath, "populate[modules][populate][video][fields][0]=url") {
		t.Errorf("module video populate missing from %q", requestedPath)
	}

	if course.DocumentID != "abc123xyz" {
		t.Errorf("DocumentID = %q", course.DocumentID)
	}
	if len(course.Modules) != 3 {
		t.Fatalf("len(Modules) = %d, want 3", len(course.Modules))
	}

	// Module order round-trips from the response.
	wantTitles := []string{"Big-O and Complexity", "Sorting", "Reading List"}
	for index, want := range wantTitles {
		if course.Modules[index].Title != want {
			t.Errorf("Modules[%d].Title = %q, want %q", index, course.Modules[index].Title, want)
		}
	}

	if course.Modules[2].Video != nil {
		t.Error("module without video should have nil Video")
	}
	if course.Modules[0].Video == nil || course.Modules[0].Video.URL != "/uploads/m1.mp4" {
		t.Errorf("Modules[0].Video = %+v", course.Modules[0].Video)
	}
}

func TestCourseByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		writer.Write([]byte(`{"error":{"message":"Not Found"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.CourseByID(context.Background(), "missing-id")
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestCourseByIDEmptyDocumentID(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "http://localhost:1337"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.CourseByID(context.Background(), "")
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCourses(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestedPath = request.URL.RequestURI()
		writer.Write([]byte(`{"data":[
			{"id":1,"documentId":"doc-a","title":"Course A","duration":"10"},
			{"id":2,"documentId":"doc-b","title":"Course B","duration":"8"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	courses, err := client.Courses(context.Background())
	if err != nil {
		t.Fatalf("Courses: %v", err)
	}
	if requestedPath != "/api/courses?populate=*" {
		t.Errorf("path = %q", requestedPath)
	}
	if len(courses) != 2 || courses[0].DocumentID != "doc-a" || courses[1].DocumentID != "doc-b" {
		t.Errorf("courses = %+v", courses)
	}
}

func TestCoursesMissingEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`[{"id":1,"documentId":"doc-a","title":"Course A"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Courses(context.Background())
	if !IsMalformed(err) {
		t.Errorf("expected malformed for unenveloped body, got %v", err)
	}
}

func TestCoursesMissingDocumentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"data":[{"id":1,"title":"No routing key"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Courses(context.Background())
	if !IsMalformed(err) {
		t.Errorf("expected malformed for course without documentId, got %v", err)
	}
}

func TestPlainText(t *testing.T) {
	block := RichTextBlock{Children: []RichTextChild{
		{Text: "Learn algorithms"},
		{Text: "from scratch."},
	}}
	if got := block.PlainText(); got != "Learn algorithms from scratch." {
		t.Errorf("PlainText = %q", got)
	}
}

func TestDescriptionTextDropsEmptyBlocks(t *testing.T) {
	course := Course{Description: []RichTextBlock{
		{Children: []RichTextChild{{Text: "First paragraph."}}},
		{Children: []RichTextChild{{Text: ""}}},
		{Children: []RichTextChild{{Text: "Second paragraph."}}},
	}}
	want := "First paragraph.\n\nSecond paragraph."
	if got := course.DescriptionText(); got != want {
		t.Errorf("DescriptionText = %q, want %q", got, want)
	}
}
