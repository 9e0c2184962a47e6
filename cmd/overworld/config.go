package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration as YAML. Save it to
~/.overworld/overworld.yaml or ./configs/overworld.yaml to customize.

Examples:
  overworld config > ~/.overworld/overworld.yaml
  overworld config validate ~/.overworld/overworld.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigValidate,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	fmt.Print(string(config.DefaultYAML()))
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := config.Parse(data, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: ok\n", path)
}
