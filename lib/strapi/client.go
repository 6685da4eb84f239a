// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// maxResponseSize caps how much of a response body the client reads.
// Course payloads are small; anything near this limit is a broken
// deployment, not a bigger catalog.
const maxResponseSize = 4 * 1024 * 1024

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL of the content repository
	// (e.g. "http://localhost:1337"). Required.
	BaseURL string

	// Token is the bearer token for protected endpoints. Empty for
	// anonymous access (login, registration, catalog browsing on
	// repositories that allow it).
	Token string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is a typed client for the content repository's REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a repository client from the given configuration.
// Unlike clients for public APIs, plain HTTP is allowed: the common
// development deployment serves the repository from localhost.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("strapi: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("strapi: BaseURL must be an http or https URL (got %q)", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithToken returns a copy of the client that authenticates with the
// given bearer token. Used when a session is established after the
// client exists (login) or rotated.
func (client *Client) WithToken(token string) *Client {
	copied := *client
	copied.token = token
	return &copied
}

// do executes a repository request. The path is relative to the base
// URL (e.g. "/api/courses"). For requests with a body, the body is
// JSON-encoded. Returns the raw response body on 2xx; on any other
// outcome returns an *APIError classified per the error taxonomy.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	url := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("strapi: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("strapi: creating request: %w", err)
	}

	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, networkError(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseSize))
	if err != nil {
		return nil, networkError(err)
	}

	client.logger.Debug("repository request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}

	return body, nil
}

// get executes a GET request and decodes the response into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return malformedError("decoding response for %s: %v", path, err)
	}
	return nil
}

// post executes a POST request with a JSON body and decodes the
// response into result.
func (client *Client) post(ctx context.Context, path string, requestBody, result any) error {
	body, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return malformedError("decoding response for %s: %v", path, err)
		}
	}
	return nil
}

// dataEnvelope is the repository's wrapper for content resources.
// Auth endpoints return bare objects; everything under /api/courses
// arrives wrapped.
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// unwrapData extracts the data field from an envelope body. A missing
// or null data field is a contract violation.
func unwrapData(body []byte, path string) (json.RawMessage, error) {
	var envelope dataEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, malformedError("decoding envelope for %s: %v", path, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, malformedError("response for %s has no data field", path)
	}
	return envelope.Data, nil
}
