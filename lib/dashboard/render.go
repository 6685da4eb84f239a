// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cps-academy/academy/lib/tui"
)

// Renderer produces the terminal dashboard view for a user.
type Renderer struct {
	Theme tui.Theme
	Width int
}

// NewRenderer creates a renderer with the default theme at the given
// width. Width bounds the feature card row; values below 40 are
// clamped so cards stay readable.
func NewRenderer(width int) Renderer {
	if width < 40 {
		width = 40
	}
	return Renderer{Theme: tui.DefaultTheme, Width: width}
}

// Badge renders the role label the way the web UI shows it:
// upper-cased with underscores as spaces ("social_media_manager" →
// "SOCIAL MEDIA MANAGER").
func (renderer Renderer) Badge(role Role) string {
	label := strings.ToUpper(strings.ReplaceAll(role.String(), "_", " "))
	style := lipgloss.NewStyle().
		Foreground(renderer.Theme.SelectedForeground).
		Background(renderer.Theme.RoleColor(role.String())).
		Padding(0, 1).
		Bold(true)
	return style.Render(label)
}

// Render produces the full dashboard for a username and role:
// greeting, role badge, description, feature cards, and the learning
// call-out for roles that get one.
func (renderer Renderer) Render(username string, role Role) string {
	if username == "" {
		username = "User"
	}
	content := ContentFor(role)
	theme := renderer.Theme

	headerStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	var sections []string
	sections = append(sections, lipgloss.JoinHorizontal(
		lipgloss.Center,
		headerStyle.Render("Welcome back, "+username+"!"),
		"  ",
		renderer.Badge(role),
	))
	sections = append(sections, faintStyle.Render(content.Description))
	sections = append(sections, "")
	sections = append(sections, renderer.renderFeatures(content.Features))

	if role.CanBrowseCatalog() {
		sections = append(sections, "")
		sections = append(sections, renderer.renderCallout())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFeatures lays the feature cards out in a horizontal row,
// wrapping is left to the terminal; card width divides the available
// width evenly.
func (renderer Renderer) renderFeatures(features []Feature) string {
	if len(features) == 0 {
		return ""
	}
	theme := renderer.Theme

	cardWidth := renderer.Width/len(features) - 2
	if cardWidth < 18 {
		cardWidth = 18
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Width(cardWidth)
	titleStyle := lipgloss.NewStyle().Foreground(theme.NormalText).Bold(true)
	descriptionStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	commandStyle := lipgloss.NewStyle().Foreground(theme.ActiveAccent)

	cards := make([]string, 0, len(features))
	for _, feature := range features {
		lines := []string{
			feature.Icon + " " + titleStyle.Render(feature.Title),
			descriptionStyle.Render(feature.Description),
		}
		if feature.Command != "" {
			lines = append(lines, commandStyle.Render("→ academy "+feature.Command))
		}
		cards = append(cards, cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (renderer Renderer) renderCallout() string {
	theme := renderer.Theme
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ActiveAccent).
		Padding(0, 2).
		Width(renderer.Width - 2)
	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	return boxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Ready to Learn?"),
		faintStyle.Render("Browse our course catalog and start your learning journey today"),
		faintStyle.Render("Run: academy courses"),
	))
}
