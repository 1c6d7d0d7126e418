// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Voronin

package tui

import (
	"errors"
	"strings"

	"github.com/avoronin/go-user-gate/internal/adapter"
)

// humanizeError turns transport errors into messages fit for the form
// footer. Network failures collapse into one line; domain errors keep the
// server's wording.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Server is unreachable, try again later"
	}

	if errors.Is(err, adapter.ErrInternalServerError) {
		return "Server error, try again later"
	}

	return err.Error()
}
