package runtimeinit

import (
	"fmt"
	"log"

	"native-embed/src/config"
)

// maxDimension bounds the embedded area; raylib and Win32 both take int32
// sizes and anything larger is a typo rather than a display.
const maxDimension = 16384

type Options struct {
	LoadOptions  config.LoadOptions
	SetupLogging func(bool)
}

func Bootstrap(opts Options) (*config.Config, error) {
	cfg, err := config.LoadWithOptions(opts.LoadOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.SetupLogging != nil {
		opts.SetupLogging(cfg.EnableFileLogging)
	}

	if cfg.Width > maxDimension || cfg.Height > maxDimension {
		return nil, fmt.Errorf("embedded area %dx%d exceeds %d pixels", cfg.Width, cfg.Height, maxDimension)
	}
	if cfg.TickHz < cfg.TargetFPS {
		log.Printf("TICK_HZ=%d is below TARGET_FPS=%d; frames will be paced by the tick", cfg.TickHz, cfg.TargetFPS)
	}

	return cfg, nil
}
