package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/gridpop/internal/app"
	"github.com/atomicstack/gridpop/internal/store"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// Source is the YAML file that was read, if any.
	Source string
	Args   []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const (
	envConfig        = "GRIDPOP_CONFIG"
	envFile          = "GRIDPOP_FILE"
	envStore         = "GRIDPOP_STORE"
	envTickRate      = "GRIDPOP_TICK_RATE"
	envFrameRate     = "GRIDPOP_FRAME_RATE"
	envFlushTimeout  = "GRIDPOP_FLUSH_TIMEOUT"
	envWriteInterval = "GRIDPOP_WRITE_INTERVAL"
	envLogFile       = "GRIDPOP_LOG_FILE"
	envLogLevel      = "GRIDPOP_LOG_LEVEL"
	envTrace         = "GRIDPOP_TRACE"

	maxRate = 240
)

// fileConfig mirrors the YAML layout. Pointers distinguish unset keys.
type fileConfig struct {
	File          *string  `yaml:"file"`
	Store         *string  `yaml:"store"`
	TickRate      *float64 `yaml:"tick_rate"`
	FrameRate     *float64 `yaml:"frame_rate"`
	FlushTimeout  *string  `yaml:"flush_timeout"`
	WriteInterval *string  `yaml:"write_interval"`
	Log           struct {
		File  *string `yaml:"file"`
		Level *string `yaml:"level"`
		Trace *bool   `yaml:"trace"`
	} `yaml:"log"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		App: app.Config{
			DataPath:     "grid.csv",
			StoreKind:    store.KindCSV,
			TickRate:     4,
			FrameRate:    60,
			FlushTimeout: 2 * time.Second,
		},
		Logging: Logging{
			FilePath: "gridpop.log",
			Level:    "info",
		},
	}
}

// Load reads configuration from the process arguments and environment.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The program
// takes no arguments; any are rejected.
func LoadArgs(args []string, environ []string) (Config, error) {
	if len(args) > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(args, " "))
	}
	env := parseEnv(environ)
	cfg := Defaults()

	path, explicit := configPath(env)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := applyFile(&cfg, data); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
			cfg.Source = path
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

// configPath returns the YAML file to read and whether it was named
// explicitly. An implicit file that does not exist is skipped.
func configPath(env map[string]string) (string, bool) {
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return v, true
	}
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, "gridpop", "config.yaml"), false
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "gridpop", "config.yaml"), false
	}
	return "", false
}

func applyFile(cfg *Config, data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}
	if fc.File != nil {
		cfg.App.DataPath = *fc.File
	}
	if fc.Store != nil {
		cfg.App.StoreKind = *fc.Store
	}
	if fc.TickRate != nil {
		cfg.App.TickRate = *fc.TickRate
	}
	if fc.FrameRate != nil {
		cfg.App.FrameRate = *fc.FrameRate
	}
	if fc.FlushTimeout != nil {
		d, err := time.ParseDuration(*fc.FlushTimeout)
		if err != nil {
			return fmt.Errorf("flush_timeout: %w", err)
		}
		cfg.App.FlushTimeout = d
	}
	if fc.WriteInterval != nil {
		d, err := time.ParseDuration(*fc.WriteInterval)
		if err != nil {
			return fmt.Errorf("write_interval: %w", err)
		}
		cfg.App.WriteInterval = d
	}
	if fc.Log.File != nil {
		cfg.Logging.FilePath = *fc.Log.File
	}
	if fc.Log.Level != nil {
		cfg.Logging.Level = *fc.Log.Level
	}
	if fc.Log.Trace != nil {
		cfg.Logging.Trace = *fc.Log.Trace
	}
	return nil
}

func applyEnv(cfg *Config, env map[string]string) error {
	cfg.App.DataPath = envOrDefault(env, envFile, cfg.App.DataPath)
	cfg.App.StoreKind = envOrDefault(env, envStore, cfg.App.StoreKind)
	cfg.Logging.FilePath = envOrDefault(env, envLogFile, cfg.Logging.FilePath)
	cfg.Logging.Level = envOrDefault(env, envLogLevel, cfg.Logging.Level)

	var err error
	if cfg.App.TickRate, err = envOrFloat(env, envTickRate, cfg.App.TickRate); err != nil {
		return err
	}
	if cfg.App.FrameRate, err = envOrFloat(env, envFrameRate, cfg.App.FrameRate); err != nil {
		return err
	}
	if cfg.App.FlushTimeout, err = envOrDuration(env, envFlushTimeout, cfg.App.FlushTimeout); err != nil {
		return err
	}
	if cfg.App.WriteInterval, err = envOrDuration(env, envWriteInterval, cfg.App.WriteInterval); err != nil {
		return err
	}
	if cfg.Logging.Trace, err = envOrBool(env, envTrace, cfg.Logging.Trace); err != nil {
		return err
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrFloat(env map[string]string, key string, fallback float64) (float64, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) (time.Duration, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

func envOrBool(env map[string]string, key string, fallback bool) (bool, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return parsed, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.DataPath) == "" {
		return errors.New("file must not be empty")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.App.StoreKind)) {
	case store.KindCSV, store.KindSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", cfg.App.StoreKind, store.KindCSV, store.KindSQLite)
	}
	if err := validateRate("tick_rate", cfg.App.TickRate); err != nil {
		return err
	}
	if err := validateRate("frame_rate", cfg.App.FrameRate); err != nil {
		return err
	}
	if cfg.App.FlushTimeout <= 0 {
		return fmt.Errorf("flush_timeout must be positive (got %s)", cfg.App.FlushTimeout)
	}
	if cfg.App.WriteInterval < 0 {
		return fmt.Errorf("write_interval must be >= 0 (got %s)", cfg.App.WriteInterval)
	}
	if strings.TrimSpace(cfg.Logging.FilePath) == "" {
		return errors.New("log.file must not be empty")
	}
	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cfg.Logging.Level)
	}
	return nil
}

func validateRate(name string, rate float64) error {
	if rate <= 0 || rate > maxRate {
		return fmt.Errorf("%s must be in (0, %d] (got %g)", name, maxRate, rate)
	}
	return nil
}
