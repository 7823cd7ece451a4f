package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("EMBED_WIDTH", "1024")
	t.Setenv("EMBED_HEIGHT", "768")
	t.Setenv("EMBED_TITLE", "Test renderer")
	t.Setenv("ENABLE_FILE_LOGGING", "true")
	t.Setenv("ENABLE_TRAY", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("Expected size 1024x768, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Title != "Test renderer" {
		t.Errorf("Expected Title to be 'Test renderer', got '%s'", cfg.Title)
	}
	if !cfg.EnableFileLogging {
		t.Errorf("Expected EnableFileLogging to be true, got %v", cfg.EnableFileLogging)
	}
	if cfg.EnableTray {
		t.Errorf("Expected EnableTray to be false, got %v", cfg.EnableTray)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"EMBED_WIDTH", "EMBED_HEIGHT", "EMBED_TITLE", "HOST_TITLE", "TICK_HZ", "TARGET_FPS", "ENABLE_FILE_LOGGING", "ENABLE_TRAY"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadWithOptions(LoadOptions{EnvPathOverride: filepath.Join(t.TempDir(), "missing.env")})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Width != DefaultWidth || cfg.Height != DefaultHeight {
		t.Errorf("Expected default size, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TickHz != DefaultTickHz || cfg.TargetFPS != DefaultTargetFPS {
		t.Errorf("Expected tick %d / fps %d, got %d / %d", DefaultTickHz, DefaultTargetFPS, cfg.TickHz, cfg.TargetFPS)
	}
	if cfg.HostTitle != DefaultHostTitle {
		t.Errorf("Expected host title %q, got %q", DefaultHostTitle, cfg.HostTitle)
	}
	if !cfg.EnableTray {
		t.Error("Expected tray enabled by default")
	}
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("EMBED_WIDTH", "-5")
	t.Setenv("TICK_HZ", "fast")

	cfg, _ := Load()
	if cfg.Width != DefaultWidth {
		t.Errorf("Expected width fallback %d, got %d", DefaultWidth, cfg.Width)
	}
	if cfg.TickHz != DefaultTickHz {
		t.Errorf("Expected tick fallback %d, got %d", DefaultTickHz, cfg.TickHz)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("TARGET_FPS", "")
	path := filepath.Join(t.TempDir(), "embed.env")
	if err := os.WriteFile(path, []byte("TARGET_FPS=30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables already present in the
	// environment, so drop the empty one t.Setenv created.
	os.Unsetenv("TARGET_FPS")

	cfg, err := LoadWithOptions(LoadOptions{EnvPathOverride: path, WidthOverride: 640})
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.TargetFPS != 30 {
		t.Errorf("Expected TargetFPS 30 from env file, got %d", cfg.TargetFPS)
	}
	if cfg.Width != 640 {
		t.Errorf("Expected width override 640, got %d", cfg.Width)
	}
}
