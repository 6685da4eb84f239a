// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient creates a Client backed by the given httptest.Server
// with a bearer token.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    server.URL,
		Token:      "test-token",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for empty BaseURL")
	}
}

func TestNewClientRejectsNonHTTPURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "unix:///tmp/cms.sock"}); err == nil {
		t.Fatal("expected error for non-http URL")
	}
}

func TestBearerTokenInjection(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"id":1,"username":"rafi","email":"rafi@cps.academy","role":{"name":"student"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if receivedAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", receivedAuth, "Bearer test-token")
	}
}

func TestAnonymousClientOmitsAuthorization(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Courses(context.Background()); err != nil {
		t.Fatalf("Courses: %v", err)
	}
	if receivedAuth != "" {
		t.Errorf("Authorization = %q, want empty for anonymous client", receivedAuth)
	}
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusBadRequest, IsValidation, "validation"},
		{http.StatusUnauthorized, IsUnauthorized, "unauthorized"},
		{http.StatusForbidden, IsForbidden, "forbidden"},
		{http.StatusNotFound, IsNotFound, "not_found"},
		{http.StatusInternalServerError, IsMalformed, "malformed"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(test.status)
				writer.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			_, err := client.CurrentUser(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if !test.check(err) {
				t.Errorf("status %d misclassified: %v", test.status, err)
			}
		})
	}
}

func TestErrorMessageFromEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		writer.Write([]byte(`{"error":{"message":"Invalid identifier or password"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Login(context.Background(), "rafi", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	apiError, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiError.Message != "Invalid identifier or password" {
		t.Errorf("Message = %q", apiError.Message)
	}
}

func TestErrorClassificationIgnoresMalformedBody(t *testing.T) {
	// Status drives classification even when the body is garbage.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		writer.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.CurrentUser(context.Background())
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestNetworkFailure(t *testing.T) {
	// A server that is immediately closed produces a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: serverURL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Courses(context.Background())
	if !IsNetworkFailure(err) {
		t.Errorf("expected network failure, got %v", err)
	}
}

func TestMalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"data": "not a course list"`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.Courses(context.Background())
	if !IsMalformed(err) {
		t.Errorf("expected malformed, got %v", err)
	}
}
