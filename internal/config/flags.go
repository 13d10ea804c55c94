package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-d database DSN
//	-session-file session pointer file path
//	-autosave-delay editor auto-save delay (e.g. "1s", "750ms")
//	-password-hash-cost bcrypt cost for new password hashes
//	-recent-limit number of notes in "Recent Thoughts"
//	-log-file log file path
//	-log-level log level (trace, debug, info, warn, error)
//	-c/-config JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		databaseDSN      string
		sessionFile      string
		autoSaveDelay    time.Duration
		passwordHashCost int
		recentLimit      int
		logFile          string
		logLevel         string
		configPath       string
	)

	fs := flag.NewFlagSet("thoughts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&sessionFile, "session-file", "", "Session pointer file path")
	fs.DurationVar(&autoSaveDelay, "autosave-delay", 0, "Editor auto-save delay (e.g., 1s, 750ms)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost for new password hashes")
	fs.IntVar(&recentLimit, "recent-limit", 0, "Number of notes in Recent Thoughts")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AutoSaveDelay:    autoSaveDelay,
			PasswordHashCost: passwordHashCost,
			RecentNotesLimit: recentLimit,
		},
		Storage: Storage{
			DB:      DB{DSN: databaseDSN},
			Session: Session{FilePath: sessionFile},
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}
