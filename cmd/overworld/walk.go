package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-overworld/internal/platform/tui"
)

var (
	flagLogFile    string
	flagPixelScale int
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Walk around the map",
	Long: `Start the interactive overworld.

Controls:
  Arrows/WASD/HJKL - Walk (keys are configurable)
  Space            - Stop
  ?                - More help
  Q/Esc/Ctrl+C     - Quit

Terminals do not report key releases, so a direction is released
automatically when its key stops repeating (display.release_after_ms).

Examples:
  overworld walk
  overworld walk --pixel-scale 2
  overworld walk --log-level debug --log-file /tmp/overworld.log`,
	Args: cobra.NoArgs,
	Run:  runWalk,
}

func init() {
	walkCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: config log.file, else discarded)")
	walkCmd.Flags().IntVar(&flagPixelScale, "pixel-scale", 0, "Terminal cells per world unit, 1-8 (0 = from config)")
}

func runWalk(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagPixelScale != 0 {
		cfg.Display.PixelScale = flagPixelScale
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	path := flagLogFile
	if path == "" {
		path = cfg.Log.File
	}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	logger, err := newLogger(out, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size, falling back to the configured size.
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := cfg.Runtime(width, height)

	logger.Info("walk started", "config", cfg.Source, "pixel_scale", rc.PixelScale, "size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH))
	if err := tui.Run(cfg, rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running overworld: %v\n", err)
		os.Exit(1)
	}
	logger.Info("walk ended")
}
