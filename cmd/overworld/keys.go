package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-overworld/internal/config"
	"github.com/vovakirdan/tui-overworld/internal/core"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows which terminal keys walk in each direction.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	fmt.Printf("Key bindings (%s):\n", cfg.Source)
	fmt.Println()

	// Calculate column widths
	maxIDLen := len("Key")
	for _, id := range core.KeyIdentifiers() {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "Key", "Walks", "Terminal keys")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "---", "-----", "-------------")

	for _, id := range core.KeyIdentifiers() {
		names := cfg.Keys[id]
		bound := "(unbound)"
		if len(names) > 0 {
			bound = strings.Join(names, ", ")
		}
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, id, core.ResolveKey(id), bound)
	}

	fmt.Println()
	fmt.Printf("Reserved: %s\n", strings.Join(quoted(config.ReservedKeys), ", "))
}

func quoted(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("%q", k)
	}
	return out
}
