// Package config loads the Reforma settings.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Uploads UploadsConfig
	Log     LogConfig
}

// StorageConfig holds document persistence settings.
type StorageConfig struct {
	Path      string
	SaveDelay time.Duration `mapstructure:"save_delay"`
}

// UploadsConfig holds attachment storage settings.
type UploadsConfig struct {
	Dir          string
	URLPrefix    string `mapstructure:"url_prefix"`
	MaxSize      int64  `mapstructure:"max_size"`
	AllowedTypes []string `mapstructure:"allowed_types"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string // "human" or "json"
}

// Load reads configuration from file and env. Env var overrides use
// prefix REFORMA_, e.g. REFORMA_STORAGE_PATH.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.path", "data/db.json")
	v.SetDefault("storage.save_delay", 800*time.Millisecond)
	v.SetDefault("uploads.dir", "public/uploads")
	v.SetDefault("uploads.url_prefix", "/uploads")
	v.SetDefault("uploads.max_size", 5*1024*1024)
	v.SetDefault("uploads.allowed_types", []string{
		"image/jpeg",
		"image/png",
		"image/webp",
		"application/pdf",
		"image/heic",
	})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetConfigType("toml")
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/reforma")

	v.SetEnvPrefix("REFORMA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
