// Copyright 2025 Sonic Labs
// This file is part of the Sonic probability library
//
// The probability library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The probability library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the probability library. If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

const (
	DefaultLogLevel = "WARNING"
	// DefaultSeed of zero asks the random source to derive its seed from the clock.
	DefaultSeed = 0
)

// Config holds the process-wide settings of the library.
type Config struct {
	LogLevel string `env:"PROBABILITY_LOG_LEVEL" envDefault:"WARNING"`
	Seed     int64  `env:"PROBABILITY_SEED" envDefault:"0"`
}

// Default returns the built-in configuration without consulting the environment.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Seed:     DefaultSeed,
	}
}

// FromEnv loads the configuration from environment variables.
// Unset variables keep their defaults.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
