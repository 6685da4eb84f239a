// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/cps-academy/academy/cmd/academy/cli"
)

// RegisterCommand returns the "register" command for creating an
// account. New accounts get the repository's default role; an
// administrator upgrades them to student afterwards.
func RegisterCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "register",
		Summary: "Create an account",
		Description: `Create an academy account.

The username may contain spaces when quoted. Passwords must be at
least 6 characters; this is checked locally before any request is
sent. After registration, run "academy login" to start a session.`,
		Usage: "academy register <username> <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Register interactively (prompts for password twice)",
				Command:     `academy register "Rafi Hasan" rafi@cps.academy`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("register", pflag.ContinueOnError)
			flags.StringVar(&passwordFile, "password-file", "", "path to file containing the password, or - to prompt interactively (default: prompt)")
			return flags
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 2 {
				return cli.Validation("username and email are required\n\nUsage: academy register <username> <email> [flags]")
			}
			username, email := args[0], args[1]
			if len(args) > 2 {
				return cli.Validation("unexpected argument: %s", args[2])
			}

			password, err := readPassword(passwordFile, "Password: ")
			if err != nil {
				return err
			}

			// Interactive registration confirms the password; file-based
			// input is already deliberate.
			if passwordFile == "" || passwordFile == "-" {
				confirmation, err := readPassword(passwordFile, "Confirm password: ")
				if err != nil {
					return err
				}
				if confirmation != password {
					return cli.Validation("passwords do not match")
				}
			}

			connection, err := cli.Connect(logger)
			if err != nil {
				return err
			}

			user, err := connection.Client.Register(ctx, username, email, password)
			if err != nil {
				return cli.FromAPIError(err)
			}

			fmt.Fprintf(os.Stderr, "Account created for %s <%s>\n", user.Username, user.Email)
			fmt.Fprintf(os.Stderr, "Run 'academy login %s' to start a session.\n", user.Email)
			return nil
		},
	}
}
