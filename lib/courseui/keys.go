// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package courseui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the course browser TUI.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Accordion control in the detail view.
	Toggle key.Binding // Expand/collapse the module under the cursor.
	Play   key.Binding // Activate the expanded module's video.

	// Catalog filter.
	FilterActivate key.Binding

	// Esc: stop video, clear filter, or leave the detail view,
	// depending on context.
	Back key.Binding

	Reload key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "expand/collapse"),
	),
	Play: key.NewBinding(
		key.WithKeys("p", " "),
		key.WithHelp("p", "play video"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
