// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// Thoughts client. It is populated by merging values from a dotenv file,
// environment variables, command-line flags, an optional JSON or YAML file
// and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds editor and account settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local database and session pointer locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log file destination and level.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. The format is chosen by extension (.yaml/.yml, otherwise JSON).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AutoSaveDelay is the quiet period after the last keystroke before the
	// editor content is written.
	// Env: APP_AUTOSAVE_DELAY
	AutoSaveDelay time.Duration `env:"AUTOSAVE_DELAY"`

	// PasswordHashCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// RecentNotesLimit caps the "Recent Thoughts" list on the home screen.
	// Env: APP_RECENT_NOTES_LIMIT
	RecentNotesLimit int `env:"RECENT_NOTES_LIMIT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Session holds the durable session pointer settings.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path or URI (e.g. "thoughts.db",
	// "file:thoughts.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds the location of the session pointer file.
type Session struct {
	// FilePath is the JSON key-value file that keeps the logged-in user's
	// identifier across restarts.
	// Env: STORAGE_SESSION_FILE
	FilePath string `env:"FILE"`
}

// Log holds logger settings.
type Log struct {
	// FilePath is where JSON log lines are appended. Empty means a "logs"
	// file next to the executable.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are merged so that the first non-zero value wins:
//  1. Environment variables (after loading the dotenv file, if any)
//  2. Command-line flags
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		withDefaults().
		build()
}
