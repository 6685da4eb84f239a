// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete academy CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	authcmd "github.com/cps-academy/academy/cmd/academy/auth"
	"github.com/cps-academy/academy/cmd/academy/cli"
	coursecmd "github.com/cps-academy/academy/cmd/academy/course"
	dashboardcmd "github.com/cps-academy/academy/cmd/academy/dashboard"
	"github.com/cps-academy/academy/lib/version"
)

// Root builds and returns the complete academy CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "academy",
		Description: `CPS Academy: terminal client for the learning platform.

Browse the course catalog, watch module videos, and see your
role-specific dashboard, backed by the academy's content repository.`,
		Subcommands: []*cli.Command{
			authcmd.LoginCommand(),
			authcmd.RegisterCommand(),
			authcmd.LogoutCommand(),
			authcmd.WhoAmICommand(),
			coursecmd.CoursesCommand(),
			coursecmd.CourseCommand(),
			dashboardcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("academy %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Authenticate (saves a session locally)",
				Command:     "academy login rafi@cps.academy",
			},
			{
				Description: "Browse the catalog interactively",
				Command:     "academy courses",
			},
			{
				Description: "Open one course by document ID",
				Command:     "academy course xk2p9qw31b7",
			},
			{
				Description: "Show your role's dashboard",
				Command:     "academy dashboard",
			},
		},
	}
}
