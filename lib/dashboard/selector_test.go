// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		want Role
	}{
		{"student", RoleStudent},
		{"developer", RoleDeveloper},
		{"social_media_manager", RoleSocialMediaManager},
		{"", RoleDefault},
		{"authenticated", RoleDefault},
		{"Student", RoleDefault}, // role names are case-sensitive
	}
	for _, test := range tests {
		if got := ParseRole(test.name); got != test.want {
			t.Errorf("ParseRole(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestContentForEveryRole(t *testing.T) {
	tests := []struct {
		role         Role
		title        string
		featureCount int
	}{
		{RoleStudent, "Student Dashboard", 2},
		{RoleDeveloper, "Developer Dashboard", 3},
		{RoleSocialMediaManager, "Social Media Manager Dashboard", 2},
		{RoleDefault, "User Dashboard", 2},
	}
	for _, test := range tests {
		content := ContentFor(test.role)
		if content.Title != test.title {
			t.Errorf("ContentFor(%v).Title = %q, want %q", test.role, content.Title, test.title)
		}
		if len(content.Features) != test.featureCount {
			t.Errorf("ContentFor(%v) has %d features, want %d", test.role, len(content.Features), test.featureCount)
		}
		if content.Description == "" {
			t.Errorf("ContentFor(%v) has empty description", test.role)
		}
	}
}

func TestUnknownRoleGetsDefaultContent(t *testing.T) {
	// A new server-side role must degrade to the default dashboard,
	// never fail.
	content := ContentFor(ParseRole("content_reviewer"))
	if content.Title != "User Dashboard" {
		t.Errorf("title = %q, want default dashboard", content.Title)
	}
}

func TestCanBrowseCatalog(t *testing.T) {
	if !RoleStudent.CanBrowseCatalog() || !RoleDeveloper.CanBrowseCatalog() {
		t.Error("students and developers get the learning call-out")
	}
	if RoleSocialMediaManager.CanBrowseCatalog() || RoleDefault.CanBrowseCatalog() {
		t.Error("managers and default users do not get the call-out")
	}
}

func TestEveryCatalogFeaturePointsAtCourses(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleDeveloper, RoleSocialMediaManager, RoleDefault} {
		content := ContentFor(role)
		navigable := 0
		for _, feature := range content.Features {
			if feature.Command != "" {
				if feature.Command != "courses" {
					t.Errorf("%v feature %q points at %q", role, feature.Title, feature.Command)
				}
				navigable++
			}
		}
		if navigable == 0 {
			t.Errorf("%v dashboard has no navigable feature", role)
		}
	}
}

func TestFeatureLabelsUniquePerRole(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleDeveloper, RoleSocialMediaManager, RoleDefault} {
		seen := map[string]bool{}
		for _, feature := range ContentFor(role).Features {
			if seen[feature.Title] {
				t.Errorf("%v has duplicate feature %q", role, feature.Title)
			}
			seen[feature.Title] = true
		}
	}
}

func TestRoleStringRoundTrip(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleDeveloper, RoleSocialMediaManager} {
		if ParseRole(role.String()) != role {
			t.Errorf("ParseRole(%q) does not round-trip", role.String())
		}
	}
}

func TestRenderBadgeFormatsRoleName(t *testing.T) {
	renderer := NewRenderer(80)
	badge := renderer.Badge(RoleSocialMediaManager)
	if !strings.Contains(badge, "SOCIAL MEDIA MANAGER") {
		t.Errorf("badge = %q, want upper-cased with spaces", badge)
	}
}

func TestRenderIncludesGreetingAndCallout(t *testing.T) {
	renderer := NewRenderer(100)

	view := renderer.Render("rafi", RoleStudent)
	if !strings.Contains(view, "Welcome back, rafi!") {
		t.Error("missing greeting")
	}
	if !strings.Contains(view, "Ready to Learn?") {
		t.Error("student dashboard should include the learning call-out")
	}

	view = renderer.Render("sam", RoleSocialMediaManager)
	if strings.Contains(view, "Ready to Learn?") {
		t.Error("manager dashboard should not include the call-out")
	}
}

func TestRenderEmptyUsernameFallsBack(t *testing.T) {
	view := NewRenderer(80).Render("", RoleDefault)
	if !strings.Contains(view, "Welcome back, User!") {
		t.Error("empty username should render as User")
	}
}
