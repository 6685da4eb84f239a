// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package courseui

import (
	"context"

	"github.com/cps-academy/academy/lib/strapi"
)

// CourseSource provides catalog and detail data to the browser
// models. The production implementation is the repository client;
// tests substitute fixtures.
type CourseSource interface {
	Courses(ctx context.Context) ([]strapi.Course, error)
	CourseByID(ctx context.Context, documentID string) (*strapi.Course, error)
}

var _ CourseSource = (*strapi.Client)(nil)
