// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package courseui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/cps-academy/academy/lib/tui"
)

// markdownParserInstance is initialized once and reused. The parser
// configuration never changes and the goldmark Parser is safe to
// share — actual parsing creates per-call state via Parse(reader).
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownParserInstance
}

// renderTerminalMarkdown parses a course description as markdown and
// renders it as styled terminal output. Soft line breaks within
// paragraphs become spaces so hard-wrapped source text reflows at any
// terminal width; headings, lists, and code blocks keep their
// structure.
//
// Descriptions authored as plain prose pass through unchanged apart
// from wrapping, so feeding rich-text paragraphs here is safe.
func renderTerminalMarkdown(input string, theme tui.Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	reader := text.NewReader(source)
	document := getMarkdownParser().Parser().Parse(reader)

	// Force the ANSI256 profile: this output is always for a bubbletea
	// TUI, and auto-detection would strip color under tests with no
	// TTY attached.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)

	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks a goldmark AST and produces styled terminal
// text. It walks the AST directly instead of implementing goldmark's
// renderer interface because terminal rendering needs
// accumulate-then-wrap semantics: a paragraph's inline content
// collects in a buffer and gets word-wrapped as a unit when the
// paragraph closes.
type markdownRenderer struct {
	source []byte
	theme  tui.Theme
	width  int

	output strings.Builder

	// Inline accumulator, flushed with word-wrap when the containing
	// block closes.
	inline strings.Builder

	// Indent for nested blocks (list continuations, blockquotes).
	indent string

	// Pending bullet: replaces the indent for the very next emitted
	// line, then clears.
	pendingBullet string

	// Counters rather than booleans so nested emphasis unwinds
	// correctly.
	boldCount   int
	italicCount int

	listDepth   int
	listCounter []int // per-depth ordered-list counters, 0 for bullets
	itemIndent  []int // per-item indent width added by its bullet

	lipRenderer *lipgloss.Renderer
}

func (renderer *markdownRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

func (renderer *markdownRenderer) contentWidth() int {
	width := renderer.width - len(renderer.indent)
	if width < 10 {
		width = 10
	}
	return width
}

func (renderer *markdownRenderer) styledText(content string) string {
	style := renderer.newStyle().Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	return style.Render(content)
}

// flushBlock word-wraps the accumulated inline content, applies the
// line indent (or the pending bullet on the first line), and writes it
// followed by a blank separator line.
func (renderer *markdownRenderer) flushBlock() {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if content == "" {
		return
	}

	wrapped := ansi.Wrap(content, renderer.contentWidth(), " ,.;-+|")
	for index, line := range strings.Split(wrapped, "\n") {
		if index == 0 && renderer.pendingBullet != "" {
			renderer.output.WriteString(renderer.pendingBullet)
			renderer.pendingBullet = ""
		} else {
			renderer.output.WriteString(renderer.indent)
		}
		renderer.output.WriteString(line)
		renderer.output.WriteString("\n")
	}
	if renderer.listDepth == 0 {
		renderer.output.WriteString("\n")
	}
}

func (renderer *markdownRenderer) highlightCode(code, language string) string {
	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			return buffer.String()
		}
	}
	return renderer.newStyle().Foreground(renderer.theme.FaintText).Render(code)
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch typed := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			renderer.inline.Reset()
		} else {
			renderer.flushBlock()
		}

	case *ast.Heading:
		if entering {
			renderer.inline.Reset()
		} else {
			content := ansi.Strip(renderer.inline.String())
			renderer.inline.Reset()
			if content != "" {
				style := renderer.newStyle().Bold(true).Foreground(renderer.theme.HeaderForeground)
				renderer.output.WriteString(style.Render(content))
				renderer.output.WriteString("\n\n")
			}
		}

	case *ast.FencedCodeBlock:
		if entering {
			renderer.renderCode(typed.Language(renderer.source), typed.Lines())
			return ast.WalkSkipChildren, nil
		}

	case *ast.CodeBlock:
		if entering {
			renderer.renderCode(nil, typed.Lines())
			return ast.WalkSkipChildren, nil
		}

	case *ast.List:
		if entering {
			start := 0
			if typed.IsOrdered() {
				start = typed.Start
			}
			renderer.listDepth++
			renderer.listCounter = append(renderer.listCounter, start)
		} else {
			renderer.listDepth--
			renderer.listCounter = renderer.listCounter[:len(renderer.listCounter)-1]
			if renderer.listDepth == 0 {
				renderer.output.WriteString("\n")
			}
		}

	case *ast.ListItem:
		if entering {
			bullet := "- "
			top := len(renderer.listCounter) - 1
			if renderer.listCounter[top] > 0 {
				bullet = fmt.Sprintf("%d. ", renderer.listCounter[top])
				renderer.listCounter[top]++
			}
			renderer.pendingBullet = renderer.indent + bullet
			renderer.indent += strings.Repeat(" ", len(bullet))
			renderer.itemIndent = append(renderer.itemIndent, len(bullet))
		} else {
			added := renderer.itemIndent[len(renderer.itemIndent)-1]
			renderer.itemIndent = renderer.itemIndent[:len(renderer.itemIndent)-1]
			renderer.indent = renderer.indent[:len(renderer.indent)-added]
		}

	case *ast.Blockquote:
		if entering {
			renderer.indent += "│ "
		} else {
			renderer.indent = strings.TrimSuffix(renderer.indent, "│ ")
		}

	case *ast.ThematicBreak:
		if entering {
			rule := renderer.newStyle().Foreground(renderer.theme.BorderColor).
				Render(strings.Repeat("─", renderer.contentWidth()))
			renderer.output.WriteString(renderer.indent + rule + "\n\n")
		}

	case *ast.Text:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(typed.Segment.Value(renderer.source))))
			if typed.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
			if typed.HardLineBreak() {
				renderer.inline.WriteString("\n")
			}
		}

	case *ast.String:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(typed.Value)))
		}

	case *ast.Emphasis:
		if typed.Level >= 2 {
			if entering {
				renderer.boldCount++
			} else {
				renderer.boldCount--
			}
		} else {
			if entering {
				renderer.italicCount++
			} else {
				renderer.italicCount--
			}
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					code.Write(textNode.Segment.Value(renderer.source))
				}
			}
			renderer.inline.WriteString(
				renderer.newStyle().Foreground(renderer.theme.FaintText).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if entering {
			var label strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					label.Write(textNode.Segment.Value(renderer.source))
				}
			}
			renderer.inline.WriteString(renderer.styledText(label.String()))
			if url := string(typed.Destination); url != "" {
				faint := renderer.newStyle().Foreground(renderer.theme.FaintText)
				renderer.inline.WriteString(" " + faint.Render("("+url+")"))
			}
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			faint := renderer.newStyle().Foreground(renderer.theme.FaintText)
			renderer.inline.WriteString(faint.Render(string(typed.URL(renderer.source))))
		}
	}

	return ast.WalkContinue, nil
}

// renderCode syntax-highlights a code block and writes it with the
// current indent, language may be nil for indented (unfenced) blocks.
func (renderer *markdownRenderer) renderCode(language []byte, lines *text.Segments) {
	var code strings.Builder
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(renderer.source))
	}

	highlighted := renderer.highlightCode(code.String(), string(language))
	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		renderer.output.WriteString(renderer.indent + line + "\n")
	}
	renderer.output.WriteString("\n")
}
