// firewall is a terminal defense shooter: threats descend toward the bottom
// row, the player shoots them down, and a falling power-up buys one shield.
//
// Usage:
//
//	firewall play            - Play in this terminal
//	firewall serve           - Start SSH server for remote play
//	firewall simulate        - Run headless autopilot games and summarize them
//	firewall config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - RNG seed (default: 12345, 0 = random)
//	--config <path>     - Path to a config YAML
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/firewall/internal/config"
	"github.com/vovakirdan/firewall/internal/core"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "firewall",
	Short: "FIREWALL - protect the system from descending threats",
	Long: `FIREWALL is a terminal arcade shooter. Threats fall toward the bottom
row; shoot them before they get through. Every few hundred ticks the threats
speed up. A falling power-up grants a shield that absorbs one breach.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run headless games under the autopilot
  config    - Print the effective configuration

Examples:
  firewall play
  firewall play --seed 0
  firewall serve --ssh :2222
  firewall simulate --runs 50`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", core.DefaultSeed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the game configuration from --config and the default
// search locations.
func loadConfig() (config.Config, config.Source, error) {
	return config.Load(flagConfig)
}

// resolveSeed turns --seed into a concrete seed.
func resolveSeed() int64 {
	if flagSeed == 0 {
		return time.Now().UnixNano()
	}
	return flagSeed
}

// newLogger creates a logger writing to w at --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
