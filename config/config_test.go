package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: its
  log:
    level: debug
http:
  port: 8080
  rateLimit:
    enabled: true
    requestsPerSecond: 5
    burst: 10
    idleTTL: 3m
database:
  driver: sqlite
  sqlitePath: ":memory:"
secretKey:
  access: test-secret
validation:
  passwordMinLength: 10
gameMechanics:
  shipLevelCoefficient: 0.1
  timeCoefficientSeconds: 1
bootstrap:
  enabled: true
  planets:
    - name: Earth
      positionX: 800
      positionY: 300
      radius: 15
      color: "#32cbd4"
      type: 0
  defaultUser:
    username: Alex
    password: "12345678"
    email: alex@mail.com
    ships:
      - name: Dragon-1
        maxCargoCapacity: 50
        level: 1
        speed: 30
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testYAML), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	dir := writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("test", dir)
	require.NoError(t, err)

	assert.Equal(t, "its", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.HTTP.RateLimit)
	assert.Equal(t, 3*time.Minute, cfg.HTTP.RateLimit.IdleTTL)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Validation.PasswordMinLength)

	require.NotNil(t, cfg.GameMechanics)
	require.NotNil(t, cfg.GameMechanics.ShipLevelCoefficient)
	assert.InDelta(t, 0.1, *cfg.GameMechanics.ShipLevelCoefficient, 1e-9)
	assert.InDelta(t, 1.0, *cfg.GameMechanics.TimeCoefficientSeconds, 1e-9)

	require.NotNil(t, cfg.Bootstrap)
	require.Len(t, cfg.Bootstrap.Planets, 1)
	assert.Equal(t, int64(800), cfg.Bootstrap.Planets[0].PositionX)
	require.NotNil(t, cfg.Bootstrap.DefaultUser)
	require.Len(t, cfg.Bootstrap.DefaultUser.Ships, 1)
	assert.Equal(t, "Dragon-1", cfg.Bootstrap.DefaultUser.Ships[0].Name)
}

func TestLoadWithEnv_EnvOverridesCoefficient(t *testing.T) {
	dir := writeTestConfig(t)
	t.Setenv("GAMEMECHANICS_SHIPLEVELCOEFFICIENT", "0.25")

	cfg, err := LoadWithEnv[Config]("test", dir)
	require.NoError(t, err)

	require.NotNil(t, cfg.GameMechanics.ShipLevelCoefficient)
	assert.InDelta(t, 0.25, *cfg.GameMechanics.ShipLevelCoefficient, 1e-9)
}

func TestLoadWithEnv_NonNumericCoefficientFails(t *testing.T) {
	dir := writeTestConfig(t)
	t.Setenv("GAMEMECHANICS_TIMECOEFFICIENTSECONDS", "fast")

	_, err := LoadWithEnv[Config]("test", dir)
	assert.Error(t, err)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("absent", t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultPasswordMinLength, cfg.Validation.PasswordMinLength)
}
