package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultDSN              = "thoughts.db"
	DefaultSessionFile      = "thoughts_session.json"
	DefaultAutoSaveDelay    = 1000 * time.Millisecond
	DefaultRecentNotesLimit = 10
	DefaultLogLevel         = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AutoSaveDelay:    DefaultAutoSaveDelay,
			PasswordHashCost: bcrypt.DefaultCost,
			RecentNotesLimit: DefaultRecentNotesLimit,
		},
		Storage: Storage{
			DB:      DB{DSN: DefaultDSN},
			Session: Session{FilePath: DefaultSessionFile},
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
