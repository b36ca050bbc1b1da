package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/firewall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order:
  1. --config path
  2. ~/.firewall/firewall.yaml
  3. ./configs/firewall.yaml
  4. embedded defaults

The output is a valid config file:
  firewall config > ~/.firewall/firewall.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("# source: %s\n", src)
	fmt.Print(string(data))
	return nil
}
