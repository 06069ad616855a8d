// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs one users API command against a remote server and
// prints the result.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// Usage lists the commands understood by [App.Run].
const Usage = `usage: client [flags] <command>

commands:
  list                 print every user
  get ID               print one user
  create JSON          create a user from a JSON object
  update ID JSON       replace a user
  delete ID            delete a user
  version              print the server build version`

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArguments = errors.New("wrong number of arguments")
	ErrInvalidID      = errors.New("id must be an integer")
	ErrInvalidPayload = errors.New("payload must be a JSON object")
)

// App dispatches commands to a [adapter.ServerAdapter].
type App struct {
	server adapter.ServerAdapter
	out    io.Writer

	logger *logger.Logger
}

// NewApp creates an [App] that writes command output to out.
func NewApp(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{server: server, out: out, logger: logger}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrWrongArguments, Usage)
	}

	command, params := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("params", params).Msg("running client command")

	switch command {
	case "list":
		if err := expectArgs(params, 0); err != nil {
			return err
		}
		users, err := a.server.List(ctx)
		if err != nil {
			return err
		}
		return a.print(users)

	case "get":
		if err := expectArgs(params, 1); err != nil {
			return err
		}
		id, err := parseID(params[0])
		if err != nil {
			return err
		}
		user, err := a.server.Get(ctx, id)
		if err != nil {
			return err
		}
		return a.print(user)

	case "create":
		if err := expectArgs(params, 1); err != nil {
			return err
		}
		fields, err := parseFields(params[0])
		if err != nil {
			return err
		}
		user, err := a.server.Create(ctx, fields)
		if err != nil {
			return err
		}
		return a.print(user)

	case "update":
		if err := expectArgs(params, 2); err != nil {
			return err
		}
		id, err := parseID(params[0])
		if err != nil {
			return err
		}
		fields, err := parseFields(params[1])
		if err != nil {
			return err
		}
		user, err := a.server.Update(ctx, id, fields)
		if err != nil {
			return err
		}
		return a.print(user)

	case "delete":
		if err := expectArgs(params, 1); err != nil {
			return err
		}
		id, err := parseID(params[0])
		if err != nil {
			return err
		}
		if err = a.server.Delete(ctx, id); err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, "User deleted")
		return err

	case "version":
		if err := expectArgs(params, 0); err != nil {
			return err
		}
		version, err := a.server.Version(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, version)
		return err

	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func expectArgs(params []string, n int) error {
	if len(params) != n {
		return fmt.Errorf("%w: want %d, got %d", ErrWrongArguments, n, len(params))
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// parseFields decodes the payload locally so that malformed JSON never
// reaches the server.
func parseFields(raw string) (models.UserFields, error) {
	var fields models.UserFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return models.UserFields{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return fields, nil
}
