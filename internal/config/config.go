// Package config resolves runtime settings from defaults, an optional
// config.toml, a .env file and RAC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "RAC"
	AppDirName = ".rac-tourist"

	KeyCatalogSource    = "catalog.source"
	KeyCatalogDir       = "catalog.dir"
	KeyCatalogPath      = "catalog.path"
	KeyStateBackend     = "state.backend"
	KeyStatePath        = "state.path"
	KeyStateDir         = "state.dir"
	KeyStateSQLitePath  = "state.sqlite_path"
	KeyStateRedisURL    = "state.redis_url"
	KeyStateRedisTTL    = "state.redis_ttl"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	configFileEnv       = "RAC_CONFIG"
	defaultConfigName   = "config"
	defaultRedisTTL     = 30 * 24 * time.Hour
	defaultLogLevel     = "warn"
	defaultLogFormat    = "console"
	defaultStateBackend = "toml"
)

const (
	CatalogEmbedded = "embedded"
	CatalogJSON     = "json"
	CatalogYAML     = "yaml"
)

const (
	BackendTOML   = "toml"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendChain  = "chain"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Catalog CatalogConfig
	State   StateConfig
	Log     LogConfig
}

type CatalogConfig struct {
	Source string
	Dir    string
	Path   string
}

type StateConfig struct {
	Backend    string
	Path       string
	Dir        string
	SQLitePath string
	RedisURL   string
	RedisTTL   time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadDotEnv loads the given .env files (default ".env") without overriding
// variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Load applies defaults and environment bindings to v, reads the config file
// if one exists, and returns the validated settings.
func Load(v *viper.Viper) (Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	appDir := filepath.Join(homeDir, AppDirName)

	setDefaults(v, appDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicit := strings.TrimSpace(os.Getenv(configFileEnv)); explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("toml")
		v.AddConfigPath(appDir)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Catalog: CatalogConfig{
			Source: strings.ToLower(strings.TrimSpace(v.GetString(KeyCatalogSource))),
			Dir:    v.GetString(KeyCatalogDir),
			Path:   v.GetString(KeyCatalogPath),
		},
		State: StateConfig{
			Backend:    strings.ToLower(strings.TrimSpace(v.GetString(KeyStateBackend))),
			Path:       v.GetString(KeyStatePath),
			Dir:        v.GetString(KeyStateDir),
			SQLitePath: v.GetString(KeyStateSQLitePath),
			RedisURL:   v.GetString(KeyStateRedisURL),
			RedisTTL:   v.GetDuration(KeyStateRedisTTL),
		},
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, appDir string) {
	v.SetDefault(KeyCatalogSource, CatalogEmbedded)
	v.SetDefault(KeyCatalogDir, "")
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyStateBackend, defaultStateBackend)
	v.SetDefault(KeyStatePath, filepath.Join(appDir, "state.toml"))
	v.SetDefault(KeyStateDir, filepath.Join(appDir, "state"))
	v.SetDefault(KeyStateSQLitePath, filepath.Join(appDir, "state.db"))
	v.SetDefault(KeyStateRedisURL, "")
	v.SetDefault(KeyStateRedisTTL, defaultRedisTTL)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
}

func (c Config) Validate() error {
	var errs []error

	switch c.Catalog.Source {
	case CatalogEmbedded:
	case CatalogJSON:
		if strings.TrimSpace(c.Catalog.Dir) == "" {
			errs = append(errs, fmt.Errorf("%s is required for the json catalog", KeyCatalogDir))
		}
	case CatalogYAML:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			errs = append(errs, fmt.Errorf("%s is required for the yaml catalog", KeyCatalogPath))
		}
	default:
		errs = append(errs, fmt.Errorf("%s %q is not one of embedded, json, yaml", KeyCatalogSource, c.Catalog.Source))
	}

	backends := []string{BackendTOML, BackendFile, BackendRedis, BackendSQLite, BackendChain}
	if !slices.Contains(backends, c.State.Backend) {
		errs = append(errs, fmt.Errorf("%s %q is not one of %s", KeyStateBackend, c.State.Backend, strings.Join(backends, ", ")))
	}
	if c.State.Backend == BackendRedis && strings.TrimSpace(c.State.RedisURL) == "" {
		errs = append(errs, fmt.Errorf("%s is required for the redis backend", KeyStateRedisURL))
	}
	if c.State.RedisTTL < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyStateRedisTTL))
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("%s %q is not one of console, json", KeyLogFormat, c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
