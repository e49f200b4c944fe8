package config

import (
	"time"

	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/sanitize"
	"github.com/alexisbeaulieu97/skingen/internal/upload"
)

// Config holds the CLI preferences. None of it reaches the rendering engine
// except the sanitizer choice.
type Config struct {
	LogLevel       string       `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	HumanLogs      bool         `yaml:"human_logs"`
	Sanitizer      string       `yaml:"sanitizer" validate:"required,oneof=policy escape"`
	DefaultVariant string       `yaml:"default_variant" validate:"required,variant"`
	Upload         UploadConfig `yaml:"upload"`
}

// UploadConfig configures the image-hosting client.
type UploadConfig struct {
	CloudName string        `yaml:"cloud_name" validate:"required"`
	Preset    string        `yaml:"preset" validate:"required"`
	Endpoint  string        `yaml:"endpoint" validate:"required,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"min=0"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:       "info",
		HumanLogs:      true,
		Sanitizer:      string(sanitize.ModePolicy),
		DefaultVariant: string(project.VariantIOS),
		Upload: UploadConfig{
			CloudName: upload.DefaultCloudName,
			Preset:    upload.DefaultPreset,
			Endpoint:  upload.DefaultEndpoint,
			Timeout:   upload.DefaultTimeout,
		},
	}
}

// SanitizerMode returns the configured sanitizer implementation name.
func (c Config) SanitizerMode() sanitize.Mode {
	return sanitize.Mode(c.Sanitizer)
}

// Variant returns the configured default variant for new projects.
func (c Config) Variant() project.Variant {
	v, err := project.ParseVariant(c.DefaultVariant)
	if err != nil {
		return project.VariantIOS
	}
	return v
}

// UploadOptions converts the upload block for the upload client.
func (c Config) UploadOptions() upload.Options {
	return upload.Options{
		CloudName: c.Upload.CloudName,
		Preset:    c.Upload.Preset,
		Endpoint:  c.Upload.Endpoint,
		Timeout:   c.Upload.Timeout,
	}
}
