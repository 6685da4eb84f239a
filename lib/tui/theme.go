// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and visual properties for the
// academy's terminal UIs. All colors use lipgloss ANSI 256-color codes
// for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and semantic categories (course level, user role) that recur across
// views — the catalog colors levels, the dashboard colors roles.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Course difficulty levels.
	LevelBeginner     lipgloss.Color
	LevelIntermediate lipgloss.Color
	LevelAdvanced     lipgloss.Color

	// User roles.
	RoleStudent            lipgloss.Color
	RoleDeveloper          lipgloss.Color
	RoleSocialMediaManager lipgloss.Color
	RoleDefault            lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Accent for active elements: the playing video, the expanded
	// module header.
	ActiveAccent lipgloss.Color

	// Search and filter match highlighting.
	SearchHighlightBackground lipgloss.Color
}

// LevelColor returns the color for a course difficulty level.
// Unknown values return FaintText.
func (theme Theme) LevelColor(level string) lipgloss.Color {
	switch level {
	case "beginner":
		return theme.LevelBeginner
	case "intermediate":
		return theme.LevelIntermediate
	case "advanced":
		return theme.LevelAdvanced
	default:
		return theme.FaintText
	}
}

// RoleColor returns the color for a user role name. Unrecognized
// roles get the default-role color.
func (theme Theme) RoleColor(role string) lipgloss.Color {
	switch role {
	case "student":
		return theme.RoleStudent
	case "developer":
		return theme.RoleDeveloper
	case "social_media_manager":
		return theme.RoleSocialMediaManager
	default:
		return theme.RoleDefault
	}
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background (the common case for
// development environments and tmux sessions).
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	LevelBeginner:     lipgloss.Color("114"), // green
	LevelIntermediate: lipgloss.Color("220"), // yellow/amber
	LevelAdvanced:     lipgloss.Color("196"), // red

	RoleStudent:            lipgloss.Color("75"),  // blue
	RoleDeveloper:          lipgloss.Color("141"), // light purple
	RoleSocialMediaManager: lipgloss.Color("208"), // orange
	RoleDefault:            lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ActiveAccent: lipgloss.Color("114"), // green

	SearchHighlightBackground: lipgloss.Color("58"), // dark amber
}
