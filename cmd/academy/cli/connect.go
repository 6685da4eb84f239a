// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cps-academy/academy/lib/config"
	"github.com/cps-academy/academy/lib/media"
	"github.com/cps-academy/academy/lib/session"
	"github.com/cps-academy/academy/lib/strapi"
)

// Connection bundles what a command needs to talk to the content
// repository: configuration, the REST client, and the session store.
type Connection struct {
	Config *config.Config
	Client *strapi.Client
	Store  *session.Store

	// Session is nil for anonymous connections.
	Session *session.Session
}

// Resolver returns the media URL resolver for this connection's
// repository.
func (connection *Connection) Resolver() media.Resolver {
	return media.Resolver{Origin: connection.Config.MediaOrigin()}
}

// Guard returns a session guard whose notices go to stderr.
func (connection *Connection) Guard(logger *slog.Logger) *session.Guard {
	return session.NewGuard(connection.Store, func(notice string) {
		fmt.Fprintln(os.Stderr, notice)
	}, logger)
}

// Connect builds an anonymous repository client from configuration.
// Used by login and register, which have no session yet.
func Connect(logger *slog.Logger) (*Connection, error) {
	configuration, err := config.Load()
	if err != nil {
		return nil, Validation("load config: %w", err)
	}

	client, err := strapi.NewClient(strapi.Config{
		BaseURL: configuration.Repository.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		return nil, Internal("create repository client: %w", err)
	}

	return &Connection{
		Config: configuration,
		Client: client,
		Store:  session.NewStore(),
	}, nil
}

// ConnectAuthenticated loads the persisted session and returns a
// client with the bearer token attached. Commands behind the session
// guard use this; when no session exists the user is told to log in
// and no repository call is attempted.
func ConnectAuthenticated(logger *slog.Logger) (*Connection, error) {
	connection, err := Connect(logger)
	if err != nil {
		return nil, err
	}

	current, err := connection.Store.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, Unauthorized("not logged in — run 'academy login <email>' first")
		}
		return nil, Internal("load session: %w", err)
	}

	connection.Session = current
	connection.Client = connection.Client.WithToken(current.Token)
	return connection, nil
}
