// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package strapi is a typed REST client for the CPS Academy content
// repository (a Strapi deployment).
//
// The client covers the endpoints the academy CLI consumes:
// authentication (local login and registration), the current user, and
// the course catalog with its modules and media references. Successful
// collection and single-resource responses are unwrapped from the
// repository's {data: ...} envelope before being returned.
//
// Expected HTTP outcomes never surface as plain errors: every failure
// the repository can produce is returned as an *APIError carrying a
// closed ErrorKind (unauthorized, forbidden, not found, network
// failure, malformed, validation) that callers branch on with the
// Is* helpers. There is no automatic retry — recovery is the user
// re-triggering the action.
package strapi
