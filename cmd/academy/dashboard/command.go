// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package dashboard implements the "dashboard" command: the
// role-specific landing view for the authenticated user.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/cps-academy/academy/cmd/academy/cli"
	dashboardui "github.com/cps-academy/academy/lib/dashboard"
)

// defaultWidth is used when stdout is not a terminal.
const defaultWidth = 100

// Command returns the "dashboard" command. It refreshes the user from
// the repository so server-side role changes show up immediately,
// then renders the role's content: feature cards and, for learning
// roles, the catalog call-out.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Summary: "Show your role's dashboard",
		Usage:   "academy dashboard",
		Examples: []cli.Example{
			{
				Description: "Show the dashboard for the logged-in user",
				Command:     "academy dashboard",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			connection, err := cli.ConnectAuthenticated(logger)
			if err != nil {
				return err
			}

			user, err := connection.Client.CurrentUser(ctx)
			if err != nil {
				connection.Guard(logger).HandleError(err)
				return cli.FromAPIError(err)
			}

			width := defaultWidth
			if term.IsTerminal(int(os.Stdout.Fd())) {
				if terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && terminalWidth > 0 {
					width = terminalWidth
				}
			}

			role := dashboardui.ParseRole(user.Role.Name)
			renderer := dashboardui.NewRenderer(width)
			fmt.Println(renderer.Render(user.Username, role))
			return nil
		},
	}
}
