// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cps-academy/academy/cmd/academy/cli"
	"github.com/cps-academy/academy/lib/session"
)

// LogoutCommand returns the "logout" command. It removes the local
// session file; the repository's tokens are stateless JWTs, so there
// is nothing to revoke server-side.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:    "logout",
		Summary: "Destroy the saved session",
		Usage:   "academy logout",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			store := session.NewStore()
			if _, err := store.Load(); err != nil {
				if errors.Is(err, session.ErrNoSession) {
					fmt.Fprintln(os.Stderr, "No session to destroy.")
					return nil
				}
				// A corrupt session file still gets removed below.
				logger.Warn("session file unreadable", "error", err)
			}

			if err := store.Clear(); err != nil {
				return cli.Internal("clear session: %w", err)
			}
			fmt.Fprintln(os.Stderr, "Logged out.")
			return nil
		},
	}
}
