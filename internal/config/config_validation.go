// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Field-level rules live on [ClientConfig]; the structured config only
// rejects values no client view could accept.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AutoSaveDelay < 0 || cfg.App.RecentNotesLimit < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Session.FilePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.AutoSaveDelay <= 0 || cfg.App.RecentNotesLimit <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || cfg.Log.Level == "" {
		return ErrInvalidLogConfigs
	}

	return nil
}
