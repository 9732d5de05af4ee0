package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSONConfig(t *testing.T, raw string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawJSONConfig(t, `{
		"app": {"version": "2.0.0", "log_level": "info", "session_lifetime": "6h", "bcrypt_cost": 11},
		"storage": {
			"db": {"driver": "postgres", "dsn": "postgres://localhost/estate"},
			"files": {"photo_dir": "/srv/photos"},
			"redis": {"address": "redis:6379", "db": 1, "cache_ttl": "30s"}
		},
		"server": {"http_address": "0.0.0.0:5000", "request_timeout": "10s", "allowed_origins": ["http://x.test"], "max_upload_size": 1024},
		"workers": {"session_sweep_interval": "1m"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 6*time.Hour, cfg.App.SessionLifetime)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/estate", cfg.Storage.DB.DSN)
	assert.Equal(t, "/srv/photos", cfg.Storage.Files.PhotoDir)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 1, cfg.Storage.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.Storage.Redis.CacheTTL)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://x.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(1024), cfg.Server.MaxUploadSize)
	assert.Equal(t, time.Minute, cfg.Workers.SessionSweepInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeRawJSONConfig(t, `{"app": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeRawJSONConfig(t, `{"server": {"request_timeout": "forever"}}`)

	_, err := parseJSON(path)

	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeRawJSONConfig(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeRawJSONConfig(t, `{}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
