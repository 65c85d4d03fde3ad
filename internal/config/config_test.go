package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, Defaults().App, cfg.App)
	require.Equal(t, "gridpop.log", cfg.Logging.FilePath)
	require.Equal(t, "info", cfg.Logging.Level)
	require.False(t, cfg.Logging.Trace)
	require.Empty(t, cfg.Source)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsRejectsArguments(t *testing.T) {
	_, err := LoadArgs([]string{"extra"}, nil)
	require.ErrorContains(t, err, "unexpected arguments")
}

func TestPrecedenceDefaultsFileEnv(t *testing.T) {
	path := writeConfig(t, `
file: from-file.csv
store: sqlite
tick_rate: 10
flush_timeout: 5s
log:
  level: debug
  trace: true
`)
	cfg, err := LoadArgs(nil, []string{
		"GRIDPOP_CONFIG=" + path,
		"GRIDPOP_FILE=from-env.csv",
		"GRIDPOP_FRAME_RATE=30",
	})
	require.NoError(t, err)
	require.Equal(t, path, cfg.Source)
	require.Equal(t, "from-env.csv", cfg.App.DataPath)
	require.Equal(t, "sqlite", cfg.App.StoreKind)
	require.Equal(t, 10.0, cfg.App.TickRate)
	require.Equal(t, 30.0, cfg.App.FrameRate)
	require.Equal(t, 5*time.Second, cfg.App.FlushTimeout)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.True(t, cfg.Logging.Trace)
	require.Equal(t, "gridpop.log", cfg.Logging.FilePath)
}

func TestXDGConfigIsOptional(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gridpop"), 0o755))
	path := filepath.Join(dir, "gridpop", "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("write_interval: 250ms\n"), 0o644))

	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + dir})
	require.NoError(t, err)
	require.Equal(t, path, cfg.Source)
	require.Equal(t, 250*time.Millisecond, cfg.App.WriteInterval)
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := LoadArgs(nil, []string{"GRIDPOP_CONFIG=" + filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestMalformedValuesFail(t *testing.T) {
	_, err := LoadArgs(nil, []string{"GRIDPOP_CONFIG=" + writeConfig(t, "tick_rate: [1, 2]\n")})
	require.Error(t, err)

	_, err = LoadArgs(nil, []string{"GRIDPOP_CONFIG=" + writeConfig(t, "flush_timeout: soon\n")})
	require.ErrorContains(t, err, "flush_timeout")

	_, err = LoadArgs(nil, []string{"HOME=" + t.TempDir(), "GRIDPOP_TICK_RATE=fast"})
	require.ErrorContains(t, err, "GRIDPOP_TICK_RATE")

	_, err = LoadArgs(nil, []string{"HOME=" + t.TempDir(), "GRIDPOP_TRACE=maybe"})
	require.ErrorContains(t, err, "GRIDPOP_TRACE")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero tick rate":    func(c *Config) { c.App.TickRate = 0 },
		"huge frame rate":   func(c *Config) { c.App.FrameRate = 1000 },
		"unknown store":     func(c *Config) { c.App.StoreKind = "redis" },
		"empty file":        func(c *Config) { c.App.DataPath = " " },
		"zero flush":        func(c *Config) { c.App.FlushTimeout = 0 },
		"negative interval": func(c *Config) { c.App.WriteInterval = -time.Second },
		"empty log file":    func(c *Config) { c.Logging.FilePath = "" },
		"bad log level":     func(c *Config) { c.Logging.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			require.Error(t, Validate(cfg))
		})
	}

	cfg := Defaults()
	cfg.App.StoreKind = "SQLite"
	cfg.App.FrameRate = 240
	require.NoError(t, Validate(cfg))
}
