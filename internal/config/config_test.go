package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
api:
  environment: development
  port: "9000"
  baseurl: localhost:9000
  allowedcorsdomains:
    - http://localhost:5173
  jwtsigningkey: secret
gin:
  mode: test
postgres:
  host: localhost
  user: grease
  password: grease
  db: grease
logger:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "9000", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "5432", conf.Postgres.Port)
	assert.Equal(t, "disable", conf.Postgres.SSLMode)
	assert.Equal(t, "debug", conf.Logger.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("API_PORT", "8181")

	conf, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "db.internal", conf.Postgres.Host)
	assert.Equal(t, "8181", conf.API.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})

	t.Run("bad environment", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
api:
  environment: moon
  jwtsigningkey: secret
gin:
  mode: test
postgres:
  host: localhost
  user: grease
  db: grease
`))
		assert.ErrorContains(t, err, "Environment")
	})

	t.Run("missing signing key", func(t *testing.T) {
		_, err := Load(writeConfig(t, `
gin:
  mode: test
postgres:
  host: localhost
  user: grease
  db: grease
`))
		assert.ErrorContains(t, err, "JWTSigningKey")
	})
}
