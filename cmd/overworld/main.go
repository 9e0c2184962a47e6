// overworld walks a single actor around a bounded map in the terminal.
//
// Usage:
//
//	overworld walk                 - Walk around interactively
//	overworld trace <events...>    - Replay key events headlessly
//	overworld keys                 - List key bindings
//	overworld config               - Print the default configuration
//	overworld config validate <f>  - Validate a configuration file
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--log-level <lvl>   - debug, info, warn, error (default: from config)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "overworld",
	Short: "Overworld - walk an actor around a tile map",
	Long: `Overworld moves a single actor on a bounded tile map.

Held direction keys stack up: the most recently pressed one wins, and
releasing it reveals the one held before. The camera keeps the actor
in the middle of the view.

Available commands:
  walk     - Walk around interactively
  trace    - Replay key events and print every snapshot
  keys     - Show key bindings
  config   - Show or validate configuration

Examples:
  overworld walk
  overworld trace scale=4 +ArrowRight . -ArrowRight
  overworld config validate ./configs/overworld.yaml`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the CLI logger writing to w. The --log-level flag
// overrides the configured level.
func newLogger(w io.Writer, cfg config.Config) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "overworld",
	})

	name := cfg.Log.Level
	if flagLogLevel != "" {
		name = flagLogLevel
	}
	if name == "" {
		return logger, nil
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}
