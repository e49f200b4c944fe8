package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// envOverlay lists the variables that override the file. Unset variables
// leave the file value alone.
type envOverlay struct {
	LogLevel       string `env:"SKINGEN_LOG_LEVEL"`
	HumanLogs      string `env:"SKINGEN_HUMAN_LOGS"`
	Sanitizer      string `env:"SKINGEN_SANITIZER"`
	DefaultVariant string `env:"SKINGEN_DEFAULT_VARIANT"`
	CloudName      string `env:"SKINGEN_CLOUDINARY_CLOUD_NAME"`
	Preset         string `env:"SKINGEN_CLOUDINARY_UPLOAD_PRESET"`
	Endpoint       string `env:"SKINGEN_CLOUDINARY_ENDPOINT"`
	Timeout        string `env:"SKINGEN_UPLOAD_TIMEOUT"`
}

// loadDotenv reads path into the process environment without replacing
// variables that are already set. A missing file is not an error.
func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var overlay envOverlay
	if _, err := env.UnmarshalFromEnviron(&overlay); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	setString(&cfg.LogLevel, overlay.LogLevel)
	setString(&cfg.Sanitizer, overlay.Sanitizer)
	setString(&cfg.DefaultVariant, overlay.DefaultVariant)
	setString(&cfg.Upload.CloudName, overlay.CloudName)
	setString(&cfg.Upload.Preset, overlay.Preset)
	setString(&cfg.Upload.Endpoint, overlay.Endpoint)

	if overlay.HumanLogs != "" {
		human, err := strconv.ParseBool(overlay.HumanLogs)
		if err != nil {
			return fmt.Errorf("SKINGEN_HUMAN_LOGS: %w", err)
		}
		cfg.HumanLogs = human
	}

	if overlay.Timeout != "" {
		timeout, err := time.ParseDuration(overlay.Timeout)
		if err != nil {
			return fmt.Errorf("SKINGEN_UPLOAD_TIMEOUT: %w", err)
		}
		cfg.Upload.Timeout = timeout
	}

	return nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
