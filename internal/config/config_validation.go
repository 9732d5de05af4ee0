// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Each failing group is reported with its own sentinel error.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.PhotoDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.SessionLifetime <= 0 || cfg.App.SessionCookieName == "" || cfg.App.BcryptCost <= 0 {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return ErrInvalidAppConfigs
	}

	if (cfg.App.AdminEmail == "") != (cfg.App.AdminPassword == "") {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
