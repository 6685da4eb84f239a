// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package strapi

import (
	"context"
	"strings"
)

// minPasswordLength is the repository's password policy, enforced
// locally so a too-short password never leaves the machine.
const minPasswordLength = 6

// Auth is a successful authentication: the bearer token and the
// authenticated user.
type Auth struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}

// Login authenticates with the repository's local provider. The
// identifier is a username or email address. On success the returned
// Auth carries the JWT for subsequent protected calls.
func (client *Client) Login(ctx context.Context, identifier, password string) (*Auth, error) {
	request := struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}{Identifier: identifier, Password: password}

	var auth Auth
	if err := client.post(ctx, "/api/auth/local", request, &auth); err != nil {
		return nil, err
	}
	if auth.JWT == "" {
		return nil, malformedError("login response has no jwt")
	}
	return &auth, nil
}

// Register creates an account with the repository's local provider.
// The minimal client-side policy is enforced before any network call:
// the password must be at least six characters and the display name
// must not be empty or whitespace-only. Violations return a
// validation-kind *APIError.
func (client *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, validationError("display name must not be empty")
	}
	if len(password) < minPasswordLength {
		return nil, validationError("password must be at least %d characters", minPasswordLength)
	}

	request := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Username: username, Email: email, Password: password}

	var response struct {
		User User `json:"user"`
	}
	if err := client.post(ctx, "/api/auth/local/register", request, &response); err != nil {
		return nil, err
	}
	if response.User.Username == "" {
		return nil, malformedError("register response has no user")
	}
	return &response.User, nil
}

// CurrentUser fetches the authenticated user. Protected: requires a
// bearer token. This is also the session validity probe — a 401 here
// means the persisted session is dead.
func (client *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := client.get(ctx, "/api/users/me?populate=role", &user); err != nil {
		return nil, err
	}
	if user.Username == "" {
		return nil, malformedError("users/me response has no username")
	}
	return &user, nil
}
