package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6432
user = "salon"
password = "secret"
dbname = "salon_test"
sslmode = "disable"

[scheduling]
timezone = "UTC"
step_minutes = 15
horizon_days = 14
min_lead_minutes = 60

[cache]
enabled = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Scheduling.StepMinutes)
	assert.Equal(t, 14, cfg.Scheduling.HorizonDays)
	assert.Equal(t, 60, cfg.Scheduling.MinLeadMinutes)
	assert.Equal(t, "UTC", cfg.Scheduling.Location().String())
	assert.Equal(t, "host=db port=6432 user=salon password=secret dbname=salon_test sslmode=disable", cfg.Database.DSN())
	// значения, которых нет в файле, берутся по умолчанию
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[scheduling]
timezone = "UTC"
step_minutes = 15
`)
	t.Setenv("SCHEDULING_STEP_MINUTES", "20")
	t.Setenv("DB_HOST", "postgres.internal")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Scheduling.StepMinutes)
	assert.Equal(t, "postgres.internal", cfg.Database.Host)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("SCHEDULING_TIMEZONE", "UTC")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Scheduling.StepMinutes)
	assert.Equal(t, 30, cfg.Scheduling.HorizonDays)
	assert.Equal(t, CacheBackendLRU, cfg.Cache.Backend)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown timezone", content: "[scheduling]\ntimezone = \"Mars/Olympus\""},
		{name: "step too small", content: "[scheduling]\ntimezone = \"UTC\"\nstep_minutes = 1"},
		{name: "horizon zero", content: "[scheduling]\ntimezone = \"UTC\"\nhorizon_days = 0"},
		{name: "unknown cache backend", content: "[scheduling]\ntimezone = \"UTC\"\n[cache]\nenabled = true\nbackend = \"memcached\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_BrokenToml(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}
