package config

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// defaultConfig returns the values used for every field left empty by the
// other sources. The defaults run the server against a local sqlite file.
// App.Version has no default: the binary's build version is used instead.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:          "debug",
			SessionLifetime:   24 * time.Hour,
			SessionCookieName: "sid",
			BcryptCost:        10,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:real-estate.db",
			},
			Files: Files{
				PhotoDir: "uploads",
			},
			Redis: Redis{
				CacheTTL: 5 * time.Minute,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:5000",
			RequestTimeout: 30 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadSize:  32 << 20,
		},
		Workers: Workers{
			SessionSweepInterval: 10 * time.Minute,
		},
	}
}
