// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from unprefixed environment variables according to the
// `env`, `envPrefix` and `envDefault` tags of its fields.
func parseEnv(cfg any) error {
	return parseEnvWithPrefix(cfg, "")
}

// parseEnvWithPrefix is parseEnv with prefix prepended to every variable
// name, e.g. "FEED_" turns `env:"TOKEN"` into FEED_TOKEN.
func parseEnvWithPrefix(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv holds the unprefixed variable names older deployments set.
type legacyEnv struct {
	Port      int    `env:"PORT"`
	JWTSecret string `env:"JWT_SECRET"`
}

// parseLegacyEnv maps PORT and JWT_SECRET onto a [StructuredConfig].
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App:    App{TokenSignKey: legacy.JWTSecret},
		Server: Server{Port: legacy.Port},
	}, nil
}
