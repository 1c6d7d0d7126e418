// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Voronin

package config

import (
	"runtime"
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-user-gate. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session lifetime, KDF cost and
	// the concurrent-derivation budget.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the user store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Client holds settings for the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control session
// lifetime and key-derivation behavior.
type App struct {
	// SessionTTL is the idle-session cap carried by the userId cookie's
	// Max-Age attribute. It is not renewed on activity.
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// HashConcurrency is the maximum number of scrypt derivations allowed
	// to run in parallel. Bounding this is a denial-of-service defence:
	// each derivation pins tens of megabytes for its lifetime.
	// Env: APP_HASH_CONCURRENCY
	HashConcurrency int `env:"HASH_CONCURRENCY"`

	// ScryptCost is the scrypt N parameter. Zero selects the built-in
	// default; lower it only for tests or memory-constrained targets.
	// Env: APP_SCRYPT_COST
	ScryptCost int `env:"SCRYPT_COST"`

	// InsecureCookies disables the Secure attribute on the session cookie
	// for plain-HTTP local development. Never enable in production.
	// Env: APP_INSECURE_COOKIES
	InsecureCookies bool `env:"INSECURE_COOKIES"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the user database.
type DB struct {
	// DSN is the data source name. A "postgres://" scheme selects the
	// PostgreSQL backend; anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Client holds settings for the terminal client binary.
type Client struct {
	// ServerAddress is the base URL of the go-user-gate server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds every client request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaults returns the configuration merged in last, filling any field the
// explicit sources left at its zero value.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionTTL:      15 * time.Minute,
			HashConcurrency: runtime.NumCPU(),
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			// a local SQLite file, so the server runs without any setup
			DB: DB{DSN: "user-gate.db"},
		},
		Client: Client{
			ServerAddress:  "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
