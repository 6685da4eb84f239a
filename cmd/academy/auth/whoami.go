// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cps-academy/academy/cmd/academy/cli"
)

// WhoAmICommand returns the "whoami" command. It verifies the saved
// session against the repository and prints the authenticated user,
// including the server-side role (which may have changed since login).
func WhoAmICommand() *cli.Command {
	return &cli.Command{
		Name:    "whoami",
		Summary: "Show the authenticated user",
		Usage:   "academy whoami",
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

			fmt.Printf("%s <%s>\n", user.Username, user.Email)
			fmt.Printf("role: %s\n", user.Role.Name)
			fmt.Printf("session: %s\n", connection.Store.Path())
			return nil
		},
	}
}
