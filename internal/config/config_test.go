package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "db"
port = 5432
user = "booking"
dbname = "halls"

[otp]
allowed_domains = ["vdartinc.com"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Booking.SuggestionCount)
	assert.Equal(t, 30, cfg.Booking.SuggestionWindow)
	assert.Equal(t, 5, cfg.OTP.TTLMinutes)
	assert.Equal(t, []string{"vdartinc.com"}, cfg.OTP.AllowedDomains)
	assert.Equal(t, "log", cfg.Notifications.Provider)

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("SENDGRID_API_KEY", "SG.key")

	path := writeConfig(t, `
[database]
port = 5432
password = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "SG.key", cfg.Notifications.SendGridAPIKey)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_QueueModeRequiresRabbitURL(t *testing.T) {
	path := writeConfig(t, `
[database]
port = 5432

[notifications]
mode = "queue"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rabbitmq.url")
}

func TestValidate_RejectsUnknownTimezoneAndProvider(t *testing.T) {
	cfg := defaults()
	cfg.Database.Port = 5432
	cfg.App.Timezone = "Mars/Olympus"
	cfg.Notifications.Provider = "pigeon"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.timezone")
	assert.Contains(t, err.Error(), "pigeon")
}
