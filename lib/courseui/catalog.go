// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package courseui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/util"

	"github.com/cps-academy/academy/lib/media"
	"github.com/cps-academy/academy/lib/strapi"
	"github.com/cps-academy/academy/lib/tui"
)

// catalogLoadedMsg delivers the fetched course list.
type catalogLoadedMsg struct {
	generation int
	courses    []strapi.Course
}

// catalogErrMsg delivers a catalog fetch failure.
type catalogErrMsg struct {
	generation int
	err        error
}

// catalogItem is one filtered row: the course plus the title rune
// positions matched by the active fuzzy filter.
type catalogItem struct {
	course    strapi.Course
	score     int
	positions map[int]bool
}

// CatalogModel is the bubbletea model for the course catalog: the
// filterable list, and the embedded detail view once a course is
// opened.
type CatalogModel struct {
	source   CourseSource
	resolver media.Resolver
	theme    tui.Theme
	keys     KeyMap

	courses []strapi.Course
	items   []catalogItem
	cursor  int

	filtering   bool
	filterInput string
	slab        *util.Slab

	loading    bool
	err        error
	generation int

	// onError observes every fetch failure that reaches the view; see
	// DetailModel.WithErrorHandler.
	onError func(error)

	// Non-nil while a course detail view is open on top of the list.
	detail *DetailModel

	width  int
	height int
}

// NewCatalogModel creates the catalog browser. The first fetch starts
// from Init.
func NewCatalogModel(source CourseSource, resolver media.Resolver) CatalogModel {
	return CatalogModel{
		source:   source,
		resolver: resolver,
		theme:    tui.DefaultTheme,
		keys:     DefaultKeyMap,
		slab:     tui.NewSlab(),
		loading:  true,
		width:    80,
		height:   24,
	}
}

// WithErrorHandler returns a copy of the model that passes every fetch
// failure to handler before displaying it, including failures from an
// embedded detail view. Commands hook the session guard's HandleError
// here.
func (model CatalogModel) WithErrorHandler(handler func(error)) CatalogModel {
	model.onError = handler
	return model
}

func (model CatalogModel) Init() tea.Cmd {
	return model.loadCatalog()
}

func (model CatalogModel) loadCatalog() tea.Cmd {
	generation := model.generation
	source := model.source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		courses, err := source.Courses(ctx)
		if err != nil {
			return catalogErrMsg{generation: generation, err: err}
		}
		return catalogLoadedMsg{generation: generation, courses: courses}
	}
}

func (model CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := model.update(msg)
	return updated, cmd
}

func (model CatalogModel) update(msg tea.Msg) (CatalogModel, tea.Cmd) {
	// Window sizes reach both the list and any open detail view.
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		model.width = size.Width
		model.height = size.Height
		if model.detail != nil {
			detail, cmd := model.detail.update(size)
			model.detail = &detail
			return model, cmd
		}
		return model, nil
	}

	if _, ok := msg.(backMsg); ok {
		model.detail = nil
		return model, nil
	}

	if model.detail != nil {
		detail, cmd := model.detail.update(msg)
		model.detail = &detail
		return model, cmd
	}

	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.generation != model.generation {
			return model, nil
		}
		model.loading = false
		model.err = nil
		model.courses = msg.courses
		model.cursor = 0
		model.applyFilter()
		return model, nil

	case catalogErrMsg:
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

func (model CatalogModel) handleKey(msg tea.KeyMsg) (CatalogModel, tea.Cmd) {
	// Filter mode captures raw input until enter or esc.
	if model.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			model.filtering = false
			model.filterInput = ""
			model.applyFilter()
		case tea.KeyEnter:
			model.filtering = false
		case tea.KeyBackspace:
			if model.filterInput != "" {
				runes := []rune(model.filterInput)
				model.filterInput = string(runes[:len(runes)-1])
				model.applyFilter()
			}
		case tea.KeySpace:
			model.filterInput += " "
			model.applyFilter()
		case tea.KeyRunes:
			model.filterInput += string(msg.Runes)
			model.applyFilter()
		}
		return model, nil
	}

	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(msg, model.keys.Back):
		if model.filterInput != "" {
			model.filterInput = ""
			model.applyFilter()
			return model, nil
		}
		return model, tea.Quit

	case key.Matches(msg, model.keys.FilterActivate):
		model.filtering = true
		return model, nil

	case key.Matches(msg, model.keys.Reload):
		model.generation++
		model.loading = true
		model.err = nil
		return model, model.loadCatalog()

	case key.Matches(msg, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
		return model, nil

	case key.Matches(msg, model.keys.Down):
		if model.cursor < len(model.items)-1 {
			model.cursor++
		}
		return model, nil

	case key.Matches(msg, model.keys.Toggle):
		if model.cursor < len(model.items) {
			detail := NewDetailModel(model.source, model.resolver, model.items[model.cursor].course.DocumentID)
			detail.onError = model.onError
			detail.embedded = true
			detail.width = model.width
			detail.height = model.height
			model.detail = &detail
			return model, detail.Init()
		}
		return model, nil
	}

	return model, nil
}

// applyFilter recomputes the visible rows from the full course list
// and the current filter input. An empty input shows every course in
// repository order; otherwise rows are fuzzy-matched on the title and
// sorted by score, best first.
func (model *CatalogModel) applyFilter() {
	model.items = model.items[:0]

	pattern := []rune(model.filterInput)
	if len(pattern) == 0 {
		for _, course := range model.courses {
			model.items = append(model.items, catalogItem{course: course})
		}
	} else {
		for _, course := range model.courses {
			result := tui.FuzzyMatch(course.Title, pattern, model.slab)
			if result.Score <= 0 {
				continue
			}
			positions := make(map[int]bool, len(result.Positions))
			for _, position := range result.Positions {
				positions[position] = true
			}
			model.items = append(model.items, catalogItem{
				course:    course,
				score:     result.Score,
				positions: positions,
			})
		}
		sort.SliceStable(model.items, func(a, b int) bool {
			return model.items[a].score > model.items[b].score
		})
	}

	if model.cursor >= len(model.items) {
		model.cursor = 0
	}
}

func (model CatalogModel) View() string {
	if model.detail != nil {
		return model.detail.View()
	}

	theme := model.theme
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)

	if model.loading {
		return faint.Render("Loading courses…")
	}
	if model.err != nil {
		errorStyle := lipgloss.NewStyle().Foreground(theme.LevelAdvanced)
		return errorStyle.Render("Error: " + model.err.Error())
	}

	var sections []string
	headerStyle := lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
	sections = append(sections, headerStyle.Render(fmt.Sprintf("Course Catalog (%d)", len(model.items))))

	if model.filtering || model.filterInput != "" {
		prompt := "/" + model.filterInput
		if model.filtering {
			prompt += "█"
		}
		sections = append(sections, faint.Render(prompt))
	}
	sections = append(sections, "")

	if len(model.items) == 0 {
		if model.filterInput != "" {
			sections = append(sections, faint.Render("No courses match the filter."))
		} else {
			sections = append(sections, faint.Render("No courses available."))
		}
	}
	for index, item := range model.items {
		sections = append(sections, model.viewRow(index, item))
	}

	sections = append(sections, "")
	sections = append(sections, model.viewHelp())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (model CatalogModel) viewRow(index int, item catalogItem) string {
	theme := model.theme
	course := item.course

	titleStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	metaStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	levelStyle := lipgloss.NewStyle().Foreground(theme.LevelColor(course.Level))
	selected := index == model.cursor

	if selected {
		titleStyle = titleStyle.
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground).
			Bold(true)
	}

	title := model.highlightTitle(course.Title, item.positions, titleStyle)

	meta := []string{}
	if course.Level != "" {
		meta = append(meta, levelStyle.Render(course.Level))
	}
	if course.Instructor != "" {
		meta = append(meta, metaStyle.Render(course.Instructor))
	}
	if course.DurationHours != "" {
		meta = append(meta, metaStyle.Render(course.DurationHours+"h"))
	}

	marker := "  "
	if selected {
		marker = "› "
	}
	row := marker + title
	if len(meta) > 0 {
		row += "  " + strings.Join(meta, " · ")
	}
	return row
}

// highlightTitle renders a title with the fuzzy-matched rune
// positions tinted, so the user sees why a row matched.
func (model CatalogModel) highlightTitle(title string, positions map[int]bool, base lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(title)
	}
	highlight := base.Background(model.theme.SearchHighlightBackground)

	var builder strings.Builder
	for index, character := range []rune(title) {
		if positions[index] {
			builder.WriteString(highlight.Render(string(character)))
		} else {
			builder.WriteString(base.Render(string(character)))
		}
	}
	return builder.String()
}

func (model CatalogModel) viewHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	parts := []string{
		model.keys.Up.Help().Key + "/" + model.keys.Down.Help().Key + " move",
		model.keys.Toggle.Help().Key + " open",
		model.keys.FilterActivate.Help().Key + " " + model.keys.FilterActivate.Help().Desc,
		model.keys.Reload.Help().Key + " " + model.keys.Reload.Help().Desc,
		model.keys.Quit.Help().Key + " " + model.keys.Quit.Help().Desc,
	}
	return helpStyle.Render(strings.Join(parts, " · "))
}

// PlainCatalog renders the course list as plain text for
// non-interactive output (--plain or a non-TTY stdout).
func PlainCatalog(courses []strapi.Course) string {
	if len(courses) == 0 {
		return "No courses available.\n"
	}
	var builder strings.Builder
	for _, course := range courses {
		builder.WriteString(course.DocumentID)
		builder.WriteString("\t")
		builder.WriteString(course.Title)
		if course.Level != "" {
			builder.WriteString("\t" + course.Level)
		}
		if course.Instructor != "" {
			builder.WriteString("\t" + course.Instructor)
		}
		if course.DurationHours != "" {
			builder.WriteString("\t" + course.DurationHours + "h")
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
