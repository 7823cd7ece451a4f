package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"native-embed/src/bridge"
	"native-embed/src/config"
	"native-embed/src/embed"
	"native-embed/src/host"
	"native-embed/src/logutil"
	"native-embed/src/renderer"
	"native-embed/src/runtimeinit"
	"native-embed/src/tray"
)

type mainOptions struct {
	width       int
	height      int
	fileLogging bool
	envPath     string
}

func main() {
	// Ensure DPI awareness before creating any windows or querying metrics
	enableDPIAwareness()

	// The host window, its timer and the renderer window all live on this
	// thread; the message loop must never migrate.
	runtime.LockOSThread()

	if err := runWithArgs(normalizeLegacyArgs(os.Args)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWithArgs(args []string) error {
	if len(args) == 0 {
		args = []string{"native-embed"}
	}

	opts := &mainOptions{}
	cmd := newRootCmd(opts)
	cmd.SetArgs(args[1:])
	return cmd.Execute()
}

func newRootCmd(opts *mainOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "native-embed",
		Short:         "Host a raylib window inside a native shell window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOptions(*opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Embedded area width in pixels (overrides EMBED_WIDTH)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Embedded area height in pixels (overrides EMBED_HEIGHT)")
	cmd.Flags().BoolVar(&opts.fileLogging, "log", false, "Write a debug log file (overrides ENABLE_FILE_LOGGING)")
	cmd.Flags().StringVar(&opts.envPath, "env", "", "Path to a .env file (highest precedence)")

	return cmd
}

// normalizeLegacyArgs maps single-dash long flags to the double-dash form.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	normalized := make([]string, len(args))
	copy(normalized, args)

	for i := 1; i < len(normalized); i++ {
		arg := normalized[i]
		for _, name := range []string{"width", "height", "log", "env"} {
			switch {
			case arg == "-"+name:
				normalized[i] = "--" + name
			case strings.HasPrefix(arg, "-"+name+"="):
				normalized[i] = "-" + arg
			}
		}
	}

	return normalized
}

func runWithOptions(opts mainOptions) error {
	cfg, err := runtimeinit.Bootstrap(runtimeinit.Options{
		LoadOptions: config.LoadOptions{
			WidthOverride:    opts.width,
			HeightOverride:   opts.height,
			ForceFileLogging: opts.fileLogging,
			EnvPathOverride:  opts.envPath,
		},
		SetupLogging: logutil.Setup,
	})
	if err != nil {
		return err
	}

	logMonitorConfiguration()
	log.Printf("Native embed starting: %dx%d, tick %d Hz, target %d FPS", cfg.Width, cfg.Height, cfg.TickHz, cfg.TargetFPS)

	shell := host.New(host.Options{
		Title:  cfg.HostTitle,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	ctrl := embed.New(
		renderer.NewRaylib(renderer.DefaultScene()),
		bridge.New(),
		shell.Ticker(),
		embed.Options{
			Title:     cfg.Title,
			TargetFPS: cfg.TargetFPS,
			TickRate:  cfg.TickHz,
		},
	)

	shell.OnReady(func(container bridge.Handle, width, height int) {
		if err := ctrl.Attach(container, width, height); err != nil {
			// Not retried: the embedded area stays blank, the shell stays up.
			log.Printf("Embedding failed: %v", err)
			showSetupError("Embedding failed", fmt.Sprintf("The renderer could not be embedded:\n\n%v", err))
		}
	})
	shell.OnClosing(func() bool {
		ctrl.Shutdown()
		// Still attached when the close arrived in the middle of a frame;
		// the host keeps its window until the frame has finished.
		return ctrl.State() == embed.Detached
	})

	if cfg.EnableTray {
		trayIcon := tray.New(tray.Config{
			Title:   cfg.HostTitle,
			Tooltip: cfg.HostTitle,
			OnQuit:  shell.Close,
		})
		go trayIcon.Run()
		defer trayIcon.Quit()
	}

	// Handle SIGINT/SIGTERM through the same path as closing the window
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Printf("Signal received, closing host")
		shell.Close()
	}()

	if err := shell.Run(); err != nil {
		return err
	}

	stats := ctrl.Stats()
	log.Printf("Native embed exiting: %d frames, %d teardowns, state %v", stats.Frames, stats.Teardowns, ctrl.State())
	return nil
}
