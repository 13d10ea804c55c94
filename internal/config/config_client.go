package config

import (
	"fmt"
	"time"
)

// ClientApp holds editor and account settings used by the client services.
type ClientApp struct {
	// AutoSaveDelay is the editor debounce window.
	AutoSaveDelay time.Duration
	// PasswordHashCost is the bcrypt cost for new password hashes.
	PasswordHashCost int
	// RecentNotesLimit caps the home screen "Recent Thoughts" list.
	RecentNotesLimit int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientSession contains the session pointer location.
type ClientSession struct {
	// FilePath is the JSON key-value file holding the session pointer.
	FilePath string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// Session holds session pointer settings.
	Session ClientSession
}

// ClientLog contains logger settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains client storage settings.
	Storage ClientStorage
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			AutoSaveDelay:    cfg.App.AutoSaveDelay,
			PasswordHashCost: cfg.App.PasswordHashCost,
			RecentNotesLimit: cfg.App.RecentNotesLimit,
		},
		Storage: ClientStorage{
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			Session: ClientSession{FilePath: cfg.Storage.Session.FilePath},
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
}
