// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin(t *testing.T) {
	var receivedBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/api/auth/local" {
			t.Errorf("path = %q", request.URL.Path)
		}
		json.NewDecoder(request.Body).Decode(&receivedBody)
		writer.Write([]byte(`{
			"jwt": "token-abc",
			"user": {"id": 4, "username": "rafi", "email": "rafi@cps.academy", "role": {"name": "student"}}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatal(err)
	}

	auth, err := client.Login(context.Background(), "rafi@cps.academy", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if receivedBody["identifier"] != "rafi@cps.academy" || receivedBody["password"] != "hunter22" {
		t.Errorf("request body = %v", receivedBody)
	}
	if auth.JWT != "token-abc" {
		t.Errorf("JWT = %q", auth.JWT)
	}
	if auth.User.Role.Name != "student" {
		t.Errorf("role = %q", auth.User.Role.Name)
	}
}

func TestLoginMissingJWTIsMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"user": {"id": 4, "username": "rafi"}}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatal(err)
	}
	_, err = client.Login(context.Background(), "rafi", "hunter22")
	if !IsMalformed(err) {
		t.Errorf("expected malformed, got %v", err)
	}
}

func TestRegisterShortPasswordFailsLocally(t *testing.T) {
	// The server must never see the request.
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requested = true
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.Register(context.Background(), "Rafi Hasan", "rafi@cps.academy", "abc")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if requested {
		t.Error("short password reached the network")
	}
}

func TestRegisterBlankUsernameFailsLocally(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requested = true
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatal(err)
	}

	_, err = client.Register(context.Background(), "   ", "rafi@cps.academy", "hunter22")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if requested {
		t.Error("blank username reached the network")
	}
}

func TestRegister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/api/auth/local/register" {
			t.Errorf("path = %q", request.URL.Path)
		}
		writer.Write([]byte(`{"user": {"id": 9, "username": "Rafi Hasan", "email": "rafi@cps.academy", "role": {"name": "student"}}}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatal(err)
	}

	user, err := client.Register(context.Background(), "Rafi Hasan", "rafi@cps.academy", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID != 9 || user.Username != "Rafi Hasan" {
		t.Errorf("user = %+v", user)
	}
}

func TestLoginThenFetchCoursesWithToken(t *testing.T) {
	// Full scenario: login, then use the returned token for a
	// protected catalog fetch.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/api/auth/local":
			writer.Write([]byte(`{"jwt":"session-token","user":{"id":1,"username":"rafi","email":"r@c.a","role":{"name":"developer"}}}`))
		case "/api/courses":
			if request.Header.Get("Authorization") != "Bearer session-token" {
				writer.WriteHeader(http.StatusUnauthorized)
				writer.Write([]byte(`{"error":{"message":"Missing or invalid credentials"}}`))
				return
			}
			writer.Write([]byte(`{"data":[{"id":1,"documentId":"doc-a","title":"Course A"}]}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatal(err)
	}

	auth, err := client.Login(context.Background(), "rafi", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if auth.JWT == "" {
		t.Fatal("empty token")
	}
	if auth.User.Role.Name != "developer" {
		t.Errorf("role = %q", auth.User.Role.Name)
	}

	courses, err := client.WithToken(auth.JWT).Courses(context.Background())
	if err != nil {
		t.Fatalf("Courses with session token: %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("len(courses) = %d", len(courses))
	}
}
