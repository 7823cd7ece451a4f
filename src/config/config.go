package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ConfigPathEnvVar = "NATIVE_EMBED"

	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultTitle     = "raylib in a Go host"
	DefaultHostTitle = "Native Embed Host"
	DefaultTickHz    = 120
	DefaultTargetFPS = 60
)

// LoadOptions carries command-line overrides. Zero values leave the
// environment's setting in place.
type LoadOptions struct {
	WidthOverride    int
	HeightOverride   int
	ForceFileLogging bool
	EnvPathOverride  string
}

type Config struct {
	Width             int
	Height            int
	Title             string
	HostTitle         string
	TickHz            int
	TargetFPS         int
	EnableFileLogging bool
	EnableTray        bool
}

func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{})
}

func LoadWithOptions(opts LoadOptions) (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) explicit override path
	// 2) .env in the application (executable) directory
	// 3) If not found, use NATIVE_EMBED env var as a path to a config file
	envPath := strings.TrimSpace(opts.EnvPathOverride)
	if envPath == "" {
		envPath = resolveEnvPath()
	}
	if envPath != "" {
		_ = godotenv.Load(envPath)
	}

	cfg := &Config{
		Width:             getPositiveInt("EMBED_WIDTH", DefaultWidth),
		Height:            getPositiveInt("EMBED_HEIGHT", DefaultHeight),
		Title:             getEnvWithDefault("EMBED_TITLE", DefaultTitle),
		HostTitle:         getEnvWithDefault("HOST_TITLE", DefaultHostTitle),
		TickHz:            getPositiveInt("TICK_HZ", DefaultTickHz),
		TargetFPS:         getPositiveInt("TARGET_FPS", DefaultTargetFPS),
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		EnableTray:        strings.ToLower(os.Getenv("ENABLE_TRAY")) != "false",
	}

	if opts.WidthOverride > 0 {
		cfg.Width = opts.WidthOverride
	}
	if opts.HeightOverride > 0 {
		cfg.Height = opts.HeightOverride
	}
	if opts.ForceFileLogging {
		cfg.EnableFileLogging = true
	}

	return cfg, nil
}

func resolveEnvPath() string {
	if execPath, err := os.Executable(); err == nil {
		exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(exeEnv); err == nil {
			return exeEnv
		}
	}

	if alt := os.Getenv(ConfigPathEnvVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getPositiveInt(key string, defaultValue int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
