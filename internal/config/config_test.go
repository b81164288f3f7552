package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
user = "smc"
password = "from-file"
dbname = "fieldservice"

[logs]
level = "debug"

[metrics]
enabled = true

[redis]
addr = "localhost:6379"
ttl = 3600
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 3600, cfg.Redis.TTL)
	assert.Equal(t, 2, cfg.Notifications.Workers)
	assert.False(t, cfg.WhatsApp.Enabled())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "1234")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.WhatsApp.Enabled())
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	require.NoError(t, os.WriteFile(".env", []byte("ROUTER_PASSWORD=secret\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("ROUTER_PASSWORD") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Mikrotik.Password)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeConfig(t, sampleConfig)
	t.Setenv("HTTP_PORT", "abc")
	_, err = Load(path)
	assert.ErrorContains(t, err, "HTTP_PORT")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaults()
		cfg.Database.Host = "localhost"
		cfg.Database.User = "smc"
		cfg.Database.DBName = "fieldservice"
		return cfg
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.Host = ""
	assert.ErrorContains(t, cfg.Validate(), "database.host")

	cfg = valid()
	cfg.Server.HTTPPort = 70000
	assert.ErrorContains(t, cfg.Validate(), "http_port")

	cfg = valid()
	cfg.Adl.Timeout = 0
	assert.ErrorContains(t, cfg.Validate(), "adl.timeout")

	cfg = valid()
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.TTL = 0
	assert.ErrorContains(t, cfg.Validate(), "redis.ttl")
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "n"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
