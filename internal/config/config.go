// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied by the builder to fields left empty by every source.
const (
	DefaultHTTPPort      = 5000
	DefaultTokenDuration = time.Hour
	DefaultEnvFilePath   = ".env"
)

// StructuredConfig is the top-level configuration container for the
// go-dev-connector server. It aggregates all sub-configurations and is
// populated by merging values from environment variables (optionally seeded
// from a dotenv file), command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing secret,
	// token parameters, password hashing cost and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger level and optional file output.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file loaded before the
	// environment is parsed. Defaults to ".env"; a missing file is ignored.
	EnvFilePath string `env:"ENV_FILE"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer is the optional "iss" claim embedded in every issued token.
	// When set, tokens with a different issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Defaults to one hour.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used when storing passwords.
	// Zero selects bcrypt's default cost.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. When empty, ":<Port>" is used.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Port is used when HTTPAddress is empty. Defaults to 5000.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the database backend.
type DB struct {
	// DSN is the connection string. A "postgres://" or "postgresql://" DSN
	// selects PostgreSQL; "sqlite://<path>" or "file:<path>" selects SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"-"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name. Defaults to "debug".
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path of a rotated log file written in addition
	// to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (seeded from the dotenv file, which never
//     overrides variables already present in the process environment);
//     PORT and JWT_SECRET are read too, below their prefixed names
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withLegacyEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
