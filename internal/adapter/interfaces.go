// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Voronin

// Package adapter provides transport-layer abstractions for communicating
// with the go-user-gate server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) that manages the userId session
// cookie between calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/avoronin/go-user-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-user-gate server. Implementations are responsible for serialisation,
// session-cookie management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetSession stores the session identifier that will be attached to all
	// subsequent requests. It is called automatically after a successful
	// SignUp or SignIn.
	SetSession(sessionID string)

	// Session returns the session identifier currently held by the adapter,
	// or an empty string if no session is active.
	Session() string

	// SignUp registers a new account. On success the session cookie from
	// the response is stored via SetSession and the created user's public
	// view is returned.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.UserView, error)

	// SignIn authenticates an existing account. On success the session
	// cookie from the response is stored via SetSession. Returns
	// [ErrNotFound] (wrapped) for an unknown email and [ErrBadRequest]
	// (wrapped) for a wrong password.
	SignIn(ctx context.Context, req models.SignInRequest) (models.UserView, error)

	// SignOut ends the current session on the client side. The stored
	// session identifier is dropped regardless of the server response.
	SignOut(ctx context.Context) error

	// CurrentUser fetches the public view of the signed-in user. Returns
	// [ErrNotFound] (wrapped) when no valid session is held.
	CurrentUser(ctx context.Context) (models.UserView, error)
}
