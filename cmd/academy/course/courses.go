// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package course

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/cps-academy/academy/cmd/academy/cli"
	"github.com/cps-academy/academy/lib/courseui"
)

// CoursesCommand returns the "courses" command: the interactive
// catalog browser, or a plain listing for scripts and pipes.
func CoursesCommand() *cli.Command {
	var plain bool

	return &cli.Command{
		Name:    "courses",
		Summary: "Browse the course catalog",
		Description: `Browse the course catalog.

Interactive by default: fuzzy-filter with /, open a course with
Enter. With --plain (or when stdout is not a terminal) prints one
tab-separated line per course: document ID, title, level, instructor,
duration.`,
		Usage: "academy courses [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the interactive catalog",
				Command:     "academy courses",
			},
			{
				Description: "List courses for scripting",
				Command:     "academy courses --plain | cut -f1",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("courses", pflag.ContinueOnError)
			flags.BoolVar(&plain, "plain", false, "print a plain listing instead of the interactive browser")
			return flags
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			connection, err := cli.ConnectAuthenticated(logger)
			if err != nil {
				return err
			}
			guard := connection.Guard(logger)

			if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
				courses, err := connection.Client.Courses(ctx)
				if err != nil {
					guard.HandleError(err)
					return cli.FromAPIError(err)
				}
				fmt.Print(courseui.PlainCatalog(courses))
				return nil
			}

			model := courseui.NewCatalogModel(connection.Client, connection.Resolver()).
				WithErrorHandler(func(err error) { guard.HandleError(err) })
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return cli.Internal("catalog browser: %w", err)
			}
			return nil
		},
	}
}
