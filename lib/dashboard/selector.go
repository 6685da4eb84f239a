// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashboard maps an authenticated user's role to the content
// of their landing view: a title, a description, and a set of feature
// cards. The repository returns roles as open strings; this package
// closes them into a fixed variant at the parse boundary so the
// selection logic is total and the fallback is explicit.
package dashboard

// Role is the closed set of roles the dashboard distinguishes. Every
// server-side role string parses to exactly one of these; anything
// unrecognized (including a missing role) collapses to RoleDefault.
type Role int

const (
	RoleDefault Role = iota
	RoleStudent
	RoleDeveloper
	RoleSocialMediaManager
)

// ParseRole closes an open role string from the repository into the
// dashboard's variant. Unknown and empty strings map to RoleDefault —
// a new server-side role degrades to the default dashboard instead of
// failing.
func ParseRole(name string) Role {
	switch name {
	case "student":
		return RoleStudent
	case "developer":
		return RoleDeveloper
	case "social_media_manager":
		return RoleSocialMediaManager
	default:
		return RoleDefault
	}
}

// String returns the canonical server-side role name.
func (role Role) String() string {
	switch role {
	case RoleStudent:
		return "student"
	case RoleDeveloper:
		return "developer"
	case RoleSocialMediaManager:
		return "social_media_manager"
	default:
		return "default"
	}
}

// CanBrowseCatalog reports whether the role's dashboard shows the
// "start learning" call to action. Students and developers get it;
// managers and default users browse the catalog from their feature
// cards instead.
func (role Role) CanBrowseCatalog() bool {
	return role == RoleStudent || role == RoleDeveloper
}

// Feature is one capability card on the dashboard. Command is the
// academy subcommand the card points at, empty when the feature has
// no navigable target yet.
type Feature struct {
	Icon        string
	Title       string
	Description string
	Command     string
}

// Content is the full role-specific dashboard: a headline, a
// one-sentence description, and the feature cards in display order.
type Content struct {
	Title       string
	Description string
	Features    []Feature
}

// ContentFor returns the dashboard content for a role. Total over the
// Role variant; the RoleDefault arm doubles as the fallback for any
// future variant value.
func ContentFor(role Role) Content {
	switch role {
	case RoleStudent:
		return Content{
			Title:       "Student Dashboard",
			Description: "Access your enrolled courses and track your learning progress",
			Features: []Feature{
				{Icon: "📚", Title: "My Courses", Description: "Continue where you left off", Command: "courses"},
				{Icon: "📈", Title: "Progress", Description: "Track your achievements"},
			},
		}
	case RoleDeveloper:
		return Content{
			Title:       "Developer Dashboard",
			Description: "Full access to all courses, modules, and administrative features",
			Features: []Feature{
				{Icon: "⌨", Title: "All Courses", Description: "Full course access", Command: "courses"},
				{Icon: "📚", Title: "Course Management", Description: "View and manage content"},
				{Icon: "👥", Title: "User Analytics", Description: "Monitor user progress"},
			},
		}
	case RoleSocialMediaManager:
		return Content{
			Title:       "Social Media Manager Dashboard",
			Description: "Access marketing materials and course overviews",
			Features: []Feature{
				{Icon: "📈", Title: "Course Catalog", Description: "Browse available courses", Command: "courses"},
				{Icon: "👥", Title: "Engagement", Description: "Track course popularity"},
			},
		}
	default:
		return Content{
			Title:       "User Dashboard",
			Description: "Explore available courses and upgrade to student access",
			Features: []Feature{
				{Icon: "📚", Title: "Course Catalog", Description: "Browse available courses", Command: "courses"},
				{Icon: "🔒", Title: "Upgrade", Description: "Unlock student features"},
			},
		}
	}
}
