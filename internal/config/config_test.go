package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "booking_service"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "booking-service"

[smtp]
host = "smtp.example.com"
port = 587
username = "mailer"
password = "secret"
from = "noreply@example.com"

[admin]
token = "t0ken"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "booking_service", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, "t0ken", cfg.Admin.Token)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "нулевой порт",
			mutate:  func(s string) string { return replaceLine(s, "http_port = 8080", "http_port = 0") },
			wantErr: "http_port",
		},
		{
			name:    "пустой host базы",
			mutate:  func(s string) string { return replaceLine(s, `host = "localhost"`, `host = ""`) },
			wantErr: "database.host",
		},
		{
			name:    "метрики без path",
			mutate:  func(s string) string { return replaceLine(s, `path = "/metrics"`, `path = ""`) },
			wantErr: "metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mutate(validConfig)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=booking password=secret dbname=booking_service sslmode=disable",
		cfg.Database.DSN())
}

func replaceLine(s, old, new string) string {
	return strings.Replace(s, old, new, 1)
}
