package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skingen/internal/sanitize"
)

// Environment tests mutate process state and cannot run in parallel.

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "sanitizer: policy\nlog_level: info\n")

	t.Setenv("SKINGEN_SANITIZER", "escape")
	t.Setenv("SKINGEN_HUMAN_LOGS", "false")
	t.Setenv("SKINGEN_UPLOAD_TIMEOUT", "10s")
	t.Setenv("SKINGEN_CLOUDINARY_CLOUD_NAME", "envcloud")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	require.Equal(t, sanitize.ModeEscape, cfg.SanitizerMode())
	require.False(t, cfg.HumanLogs)
	require.Equal(t, 10*time.Second, cfg.Upload.Timeout)
	require.Equal(t, "envcloud", cfg.Upload.CloudName)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_DotenvFillsUnsetVariables(t *testing.T) {
	dir := t.TempDir()
	dotenv := writeFile(t, dir, ".env", "SKINGEN_CLOUDINARY_UPLOAD_PRESET=from_dotenv\nSKINGEN_LOG_LEVEL=warn\n")

	t.Setenv("SKINGEN_LOG_LEVEL", "debug")
	// Registered for cleanup, then cleared so the .env value applies.
	t.Setenv("SKINGEN_CLOUDINARY_UPLOAD_PRESET", "")
	require.NoError(t, os.Unsetenv("SKINGEN_CLOUDINARY_UPLOAD_PRESET"))

	cfg, err := Load(LoadOptions{Path: filepath.Join(dir, "absent.yaml"), Dotenv: dotenv})
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "from_dotenv", cfg.Upload.Preset)
}

func TestLoad_MissingDotenvIsIgnored(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(LoadOptions{Path: filepath.Join(dir, "absent.yaml"), Dotenv: filepath.Join(dir, ".env")})
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestLoad_InvalidEnvironmentValue(t *testing.T) {
	t.Setenv("SKINGEN_UPLOAD_TIMEOUT", "soon")

	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "SKINGEN_UPLOAD_TIMEOUT")
}
