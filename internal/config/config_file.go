package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the on-disk layout of the optional config file.
// The same struct serves JSON and YAML.
type fileConfig struct {
	App struct {
		AutoSaveDelay    Duration `json:"autosave_delay" yaml:"autosave_delay"`
		PasswordHashCost int      `json:"password_hash_cost" yaml:"password_hash_cost"`
		RecentNotesLimit int      `json:"recent_notes_limit" yaml:"recent_notes_limit"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Session struct {
			FilePath string `json:"file" yaml:"file"`
		} `json:"session,omitempty" yaml:"session,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Log struct {
		FilePath string `json:"file" yaml:"file"`
		Level    string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseConfigFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(f).Decode(&fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(f).Decode(&fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			AutoSaveDelay:    time.Duration(fc.App.AutoSaveDelay),
			PasswordHashCost: fc.App.PasswordHashCost,
			RecentNotesLimit: fc.App.RecentNotesLimit,
		},
		Storage: Storage{
			DB:      DB{DSN: fc.Storage.DB.DSN},
			Session: Session{FilePath: fc.Storage.Session.FilePath},
		},
		Log: Log{
			FilePath: fc.Log.FilePath,
			Level:    fc.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes strings like
// "1s" or "750ms" from JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		var n int64
		if numErr := node.Decode(&n); numErr != nil {
			return err
		}
		tmp = time.Duration(n)
	}
	*d = Duration(tmp)
	return nil
}
