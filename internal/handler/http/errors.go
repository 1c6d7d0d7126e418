// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Voronin

package http

import "errors"

// Validation sentinels returned while checking incoming request payloads.
// Their messages are user-facing; each one maps to HTTP 400.
var (
	// ErrNameIsRequired is returned when a sign-up payload carries an empty
	// display name.
	ErrNameIsRequired = errors.New("name is required")

	// ErrEmailIsRequired is returned when the email field is empty.
	ErrEmailIsRequired = errors.New("email is required")

	// ErrInvalidEmail is returned when the email field is present but is not
	// a plain, well-formed address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort is returned when the password is shorter than the
	// minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
)
