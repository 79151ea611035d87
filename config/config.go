package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTokenTTL     = 12 * time.Hour
	defaultPasswordMinLength  = 8
)

// Supported values of database.driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Validation *ValidationConfig `json:"validation" yaml:"validation"`

	// GameMechanics holds the constants of the mission duration formula
	GameMechanics *GameMechanicsConfig `json:"gameMechanics" yaml:"gameMechanics"`

	// Bootstrap describes the catalog and accounts seeded on startup
	Bootstrap *BootstrapConfig `json:"bootstrap" yaml:"bootstrap"`
}

// DatabaseConfig selects the gorm dialect.
type DatabaseConfig struct {
	// Driver is "postgres" (default) or "sqlite"
	Driver      string `json:"driver" yaml:"driver"`
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// ValidationConfig defines input validation limits
type ValidationConfig struct {
	PasswordMinLength int `json:"passwordMinLength" yaml:"passwordMinLength"`
}

// RateLimitConfig defines the per-client token bucket of the HTTP API
type RateLimitConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	IdleTTL           time.Duration `json:"idleTTL" yaml:"idleTTL"`
}

// GameMechanicsConfig defines the duration formula constants.
// Pointers distinguish an absent value from zero.
type GameMechanicsConfig struct {
	ShipLevelCoefficient   *float64 `json:"shipLevelCoefficient" yaml:"shipLevelCoefficient"`
	TimeCoefficientSeconds *float64 `json:"timeCoefficientSeconds" yaml:"timeCoefficientSeconds"`
}

// BootstrapConfig defines the default planets and accounts
type BootstrapConfig struct {
	Enabled     bool         `json:"enabled" yaml:"enabled"`
	Planets     []PlanetSeed `json:"planets" yaml:"planets"`
	Admin       *UserSeed    `json:"admin" yaml:"admin"`
	DefaultUser *UserSeed    `json:"defaultUser" yaml:"defaultUser"`
}

type PlanetSeed struct {
	Name      string `json:"name" yaml:"name"`
	PositionX int64  `json:"positionX" yaml:"positionX"`
	PositionY int64  `json:"positionY" yaml:"positionY"`
	Radius    int    `json:"radius" yaml:"radius"`
	Color     string `json:"color" yaml:"color"`
	Type      int    `json:"type" yaml:"type"`
}

type UserSeed struct {
	Username string     `json:"username" yaml:"username"`
	Password string     `json:"password" yaml:"password"`
	Email    string     `json:"email" yaml:"email"`
	Ships    []ShipSeed `json:"ships" yaml:"ships"`
}

type ShipSeed struct {
	Name             string  `json:"name" yaml:"name"`
	MaxCargoCapacity float64 `json:"maxCargoCapacity" yaml:"maxCargoCapacity"`
	Level            int     `json:"level" yaml:"level"`
	Speed            float64 `json:"speed" yaml:"speed"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// Output is "stdout" (default) or "stderr"
	Output string `json:"output" yaml:"output"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A local .env file only seeds the process environment; real env vars win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverPostgres
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.Validation == nil {
		cfg.Validation = &ValidationConfig{}
	}
	if cfg.Validation.PasswordMinLength <= 0 {
		cfg.Validation.PasswordMinLength = defaultPasswordMinLength
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
