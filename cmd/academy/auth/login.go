// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/cps-academy/academy/cmd/academy/cli"
	"github.com/cps-academy/academy/lib/session"
)

// LoginCommand returns the "login" command for authenticating against
// the content repository. It performs the credential exchange,
// verifies the returned token by fetching the user profile (which
// also resolves the role), and saves the session to the well-known
// path. Subsequent commands (courses, dashboard) load it
// transparently, like SSH keys.
func LoginCommand() *cli.Command {
	var passwordFile string

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and save a session",
		Description: `Log in to the academy and save the session locally.

After login, commands like "academy courses" and "academy dashboard"
use the saved session transparently — no flags needed.

The session file is stored at ~/.config/academy/session.json (or
$ACADEMY_SESSION_FILE if set, or $XDG_CONFIG_HOME/academy/session.json).
The file is written with mode 0600 (owner-only read/write) since it
contains a bearer token.

The password can be provided via --password-file (a path to a file
containing the password) or prompted interactively if --password-file
is "-" or omitted.`,
		Usage: "academy login <email-or-username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "academy login rafi@cps.academy",
			},
			{
				Description: "Log in with password from file",
				Command:     "academy login rafi@cps.academy --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
			flags.StringVar(&passwordFile, "password-file", "", "path to file containing the password, or - to prompt interactively (default: prompt)")
			return flags
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) < 1 {
				return cli.Validation("email or username is required\n\nUsage: academy login <email-or-username> [flags]")
			}
			identifier := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			password, err := readPassword(passwordFile, "Password: ")
			if err != nil {
				return err
			}

			connection, err := cli.Connect(logger)
			if err != nil {
				return err
			}

			auth, err := connection.Client.Login(ctx, identifier, password)
			if err != nil {
				return cli.FromAPIError(err)
			}

			// Verify the token works before saving. This round trip also
			// resolves the user's role, which the login response omits.
			authenticated := connection.Client.WithToken(auth.JWT)
			user, err := authenticated.CurrentUser(ctx)
			if err != nil {
				return cli.FromAPIError(err)
			}

			if err := connection.Store.Save(&session.Session{Token: auth.JWT, User: *user}); err != nil {
				return cli.Internal("save session: %w", err)
			}

			fmt.Fprintf(os.Stderr, "Logged in as %s (%s)\n", user.Username, user.Role.Name)
			fmt.Fprintf(os.Stderr, "Session saved to %s\n", connection.Store.Path())
			return nil
		},
	}
}

// readPassword reads a password. If passwordFile is empty or "-",
// prompts interactively on the terminal with echo disabled; otherwise
// reads from the file path, stripping trailing newlines.
func readPassword(passwordFile, prompt string) (string, error) {
	if passwordFile != "" && passwordFile != "-" {
		data, err := os.ReadFile(passwordFile)
		if err != nil {
			return "", cli.Internal("reading %s: %w", passwordFile, err)
		}
		for len(data) > 0 && (data[len(data)-1] == '\n' || data[len(data)-1] == '\r') {
			data = data[:len(data)-1]
		}
		if len(data) == 0 {
			return "", cli.Validation("file %s is empty (after stripping trailing newlines)", passwordFile)
		}
		return string(data), nil
	}

	stdinFileDescriptor := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFileDescriptor) {
		return "", cli.Validation("no terminal available for interactive password prompt (use --password-file)")
	}

	fmt.Fprint(os.Stderr, prompt)
	passwordBytes, err := term.ReadPassword(stdinFileDescriptor)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", cli.Internal("reading password: %w", err)
	}
	return string(passwordBytes), nil
}
