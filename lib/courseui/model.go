// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package courseui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cps-academy/academy/lib/media"
	"github.com/cps-academy/academy/lib/strapi"
	"github.com/cps-academy/academy/lib/tui"
)

// fetchTimeout bounds each repository call issued from the event loop.
const fetchTimeout = 10 * time.Second

// courseLoadedMsg delivers a fetched course to the detail model.
// generation pairs the response with the request that started it;
// stale responses (from before a reload) are dropped.
type courseLoadedMsg struct {
	generation int
	course     *strapi.Course
}

// courseErrMsg delivers a fetch failure to the detail model.
type courseErrMsg struct {
	generation int
	err        error
}

// backMsg signals that an embedded detail view wants to return to the
// catalog.
type backMsg struct{}

// DetailModel is the bubbletea model for a single course: header,
// description, and the module accordion.
type DetailModel struct {
	source   CourseSource
	resolver media.Resolver
	theme    tui.Theme
	keys     KeyMap

	documentID string
	course     *strapi.Course
	state      ViewerState
	cursor     int

	loading    bool
	err        error
	generation int

	// onError observes every fetch failure that reaches the view, so
	// the session guard can react (an unauthorized result destroys the
	// persisted session) even when the failure happens mid-browse.
	onError func(error)

	// embedded: esc returns to the catalog instead of quitting.
	embedded bool

	width  int
	height int
}

// NewDetailModel creates a detail viewer for one course. The first
// fetch starts from Init.
func NewDetailModel(source CourseSource, resolver media.Resolver, documentID string) DetailModel {
	return DetailModel{
		source:     source,
		resolver:   resolver,
		theme:      tui.DefaultTheme,
		keys:       DefaultKeyMap,
		documentID: documentID,
		loading:    true,
		width:      80,
		height:     24,
	}
}

// WithErrorHandler returns a copy of the model that passes every fetch
// failure to handler before displaying it. Commands hook the session
// guard's HandleError here.
func (model DetailModel) WithErrorHandler(handler func(error)) DetailModel {
	model.onError = handler
	return model
}

func (model DetailModel) Init() tea.Cmd {
	return model.loadCourse()
}

// loadCourse fetches the course off the event loop. The command
// captures the current generation; Update ignores results from older
// generations so a reload can never be overwritten by a slow earlier
// fetch.
func (model DetailModel) loadCourse() tea.Cmd {
	generation := model.generation
	source := model.source
	documentID := model.documentID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		course, err := source.CourseByID(ctx, documentID)
		if err != nil {
			return courseErrMsg{generation: generation, err: err}
		}
		return courseLoadedMsg{generation: generation, course: course}
	}
}

func (model DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := model.update(msg)
	return updated, cmd
}

// update is the concrete-typed Update used both by the tea runtime
// (via Update) and by the catalog model when the detail view is
// embedded.
func (model DetailModel) update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		model.width = msg.Width
		model.height = msg.Height
		return model, nil

	case courseLoadedMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.loading = false
		model.err = nil
		model.course = msg.course
		// Fresh course, fresh accordion.
		model.state = model.state.Reset()
		model.cursor = 0
		return model, nil

	case courseErrMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.loading = false
		model.err = msg.err
		if model.onError != nil {
			model.onError(msg.err)
		}
		return model, nil

	case tea.KeyMsg:
		return model.handleKey(msg)
	}

	return model, nil
}

func (model DetailModel) handleKey(msg tea.KeyMsg) (DetailModel, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(msg, model.keys.Back):
		if _, playing := model.state.ActiveVideo(); playing {
			model.state = model.state.StopVideo()
			return model, nil
		}
		if model.embedded {
			return model, func() tea.Msg { return backMsg{} }
		}
		return model, tea.Quit

	case key.Matches(msg, model.keys.Reload):
		model.generation++
		model.loading = true
		model.err = nil
		return model, model.loadCourse()

	case key.Matches(msg, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
		return model, nil

	case key.Matches(msg, model.keys.Down):
		if model.course != nil && model.cursor < len(model.course.Modules)-1 {
			model.cursor++
		}
		return model, nil

	case key.Matches(msg, model.keys.Toggle):
		if module, ok := model.moduleUnderCursor(); ok {
			model.state = model.state.ToggleModule(module.ID)
		}
		return model, nil

	case key.Matches(msg, model.keys.Play):
		if module, ok := model.moduleUnderCursor(); ok && module.Video != nil {
			model.state = model.state.PlayVideo(module.ID, model.resolver.Resolve(module.Video.URL))
		}
		return model, nil
	}

	return model, nil
}

func (model DetailModel) moduleUnderCursor() (strapi.Module, bool) {
	if model.course == nil || model.cursor >= len(model.course.Modules) {
		return strapi.Module{}, false
	}
	return model.course.Modules[model.cursor], true
}

func (model DetailModel) View() string {
	theme := model.theme
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	if model.loading {
		return faint.Render("Loading course…")
	}
	if model.err != nil {
		if strapi.IsNotFound(model.err) {
			return faint.Render("Course not found.")
		}
		errorStyle := lipgloss.NewStyle().Foreground(theme.LevelAdvanced)
		return errorStyle.Render("Error: " + model.err.Error())
	}
	if model.course == nil {
		return faint.Render("Course not found.")
	}

	var sections []string
	sections = append(sections, model.viewHeader())
	if description := model.course.DescriptionText(); description != "" {
		sections = append(sections, renderTerminalMarkdown(description, theme, model.width))
	}
	sections = append(sections, model.viewModules())
	sections = append(sections, "")
	sections = append(sections, model.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (model DetailModel) viewHeader() string {
	theme := model.theme
	course := model.course

	titleStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	levelStyle := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.LevelColor(course.Level)).
		Padding(0, 1)

	meta := []string{}
	if course.Level != "" {
		meta = append(meta, levelStyle.Render(strings.ToUpper(course.Level)))
	}
	if course.Instructor != "" {
		meta = append(meta, faint.Render("by "+course.Instructor))
	}
	if course.DurationHours != "" {
		meta = append(meta, faint.Render(course.DurationHours+" hours"))
	}

	lines := []string{
		titleStyle.Render(course.Title),
		strings.Join(meta, "  "),
	}
	if course.Thumbnail != nil && course.Thumbnail.URL != "" {
		lines = append(lines, faint.Render("thumbnail: "+model.resolver.Resolve(course.Thumbnail.URL)))
	}
	lines = append(lines, "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (model DetailModel) viewModules() string {
	theme := model.theme
	course := model.course
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	headerStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	header := headerStyle.Render(fmt.Sprintf("Modules (%d)", len(course.Modules)))

	if len(course.Modules) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, faint.Render("No modules added yet."))
	}

	lines := []string{header}
	for index, module := range course.Modules {
		lines = append(lines, model.viewModuleRow(index, module))
		expanded, open := model.state.ExpandedModule()
		if open && expanded == module.ID {
			lines = append(lines, model.viewModuleBody(module))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (model DetailModel) viewModuleRow(index int, module strapi.Module) string {
	theme := model.theme

	marker := "▸"
	if expanded, open := model.state.ExpandedModule(); open && expanded == module.ID {
		marker = "▾"
	}

	rowStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	if index == model.cursor {
		rowStyle = rowStyle.
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground)
	}

	label := fmt.Sprintf("%s %d. %s", marker, index+1, module.Title)
	if module.DurationLabel != "" {
		label += "  (" + module.DurationLabel + ")"
	}
	return rowStyle.Render(label)
}

// viewModuleBody renders the open accordion section for a module:
// the video player when active, the play hint when a video exists,
// or a notice when the module has none.
func (model DetailModel) viewModuleBody(module strapi.Module) string {
	theme := model.theme
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	if module.Video == nil || module.Video.URL == "" {
		return "    " + faint.Render("No video for this module.")
	}

	if url, playing := model.state.ActiveVideo(); playing {
		playerStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ActiveAccent).
			Padding(0, 1).
			MarginLeft(4)
		activeStyle := lipgloss.NewStyle().Foreground(theme.ActiveAccent).Bold(true)
		return playerStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			activeStyle.Render("▶ Playing"),
			faint.Render(url),
		))
	}

	return "    " + faint.Render("Press p to play the video.")
}

func (model DetailModel) viewHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	parts := []string{
		model.keys.Up.Help().Key + "/" + model.keys.Down.Help().Key + " move",
		model.keys.Toggle.Help().Key + " " + model.keys.Toggle.Help().Desc,
		model.keys.Play.Help().Key + " " + model.keys.Play.Help().Desc,
		model.keys.Back.Help().Key + " " + model.keys.Back.Help().Desc,
		model.keys.Reload.Help().Key + " " + model.keys.Reload.Help().Desc,
		model.keys.Quit.Help().Key + " " + model.keys.Quit.Help().Desc,
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}
