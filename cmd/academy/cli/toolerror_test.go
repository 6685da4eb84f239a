// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"net/http"
	"testing"

	"github.com/cps-academy/academy/lib/strapi"
)

func TestToolErrorWrapsAndUnwraps(t *testing.T) {
	inner := errors.New("boom")
	wrapped := Internal("context: %w", inner)

	if wrapped.Category != CategoryInternal {
		t.Errorf("category = %q", wrapped.Category)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is cannot see through ToolError")
	}
	if wrapped.Error() != "context: boom" {
		t.Errorf("message = %q", wrapped.Error())
	}
}

func TestFromAPIErrorCategories(t *testing.T) {
	tests := []struct {
		kind strapi.ErrorKind
		want ErrorCategory
	}{
		{strapi.KindValidation, CategoryValidation},
		{strapi.KindNotFound, CategoryNotFound},
		{strapi.KindUnauthorized, CategoryUnauthorized},
		{strapi.KindForbidden, CategoryForbidden},
		{strapi.KindNetworkFailure, CategoryTransient},
		{strapi.KindMalformed, CategoryInternal},
	}

	for _, test := range tests {
		apiError := &strapi.APIError{Kind: test.kind, StatusCode: http.StatusTeapot, Message: "x"}
		got := FromAPIError(apiError)
		if got.Category != test.want {
			t.Errorf("FromAPIError(%s).Category = %q, want %q", test.kind, got.Category, test.want)
		}
		if !errors.Is(got, apiError) {
			t.Errorf("FromAPIError(%s) broke the error chain", test.kind)
		}
	}
}

func TestFromAPIErrorNonRepositoryError(t *testing.T) {
	got := FromAPIError(errors.New("something else"))
	if got.Category != CategoryInternal {
		t.Errorf("category = %q, want internal", got.Category)
	}
}
