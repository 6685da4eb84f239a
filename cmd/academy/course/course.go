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

// CourseCommand returns the "course" command: the detail viewer for a
// single course, addressed by its document ID.
func CourseCommand() *cli.Command {
	var plain bool

	return &cli.Command{
		Name:    "course",
		Summary: "View one course and its modules",
		Description: `View a single course: description, modules, and videos.

Interactive by default: move with j/k, expand a module with Enter,
play its video with p. Only one module is open at a time, and a video
plays only inside the open module. With --plain (or when stdout is
not a terminal) prints the course as text, with media URLs resolved.`,
		Usage: "academy course <document-id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Open a course in the viewer",
				Command:     "academy course xk2p9qw31b7",
			},
			{
				Description: "Dump a course as text",
				Command:     "academy course xk2p9qw31b7 --plain",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("course", pflag.ContinueOnError)
			flags.BoolVar(&plain, "plain", false, "print the course as text instead of the interactive viewer")
			return flags
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("course document ID is required\n\nUsage: academy course <document-id> [flags]")
			}
			documentID := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			connection, err := cli.ConnectAuthenticated(logger)
			if err != nil {
				return err
			}
			guard := connection.Guard(logger)

			if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
				fetched, err := connection.Client.CourseByID(ctx, documentID)
				if err != nil {
					guard.HandleError(err)
					return cli.FromAPIError(err)
				}
				fmt.Print(courseui.PlainCourse(fetched, connection.Resolver()))
				return nil
			}

			model := courseui.NewDetailModel(connection.Client, connection.Resolver(), documentID).
				WithErrorHandler(func(err error) { guard.HandleError(err) })
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return cli.Internal("course viewer: %w", err)
			}
			return nil
		},
	}
}
