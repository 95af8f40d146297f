package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sdl-shooter/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
--config or the first config file found in:

  ~/.shooter/configs/shooter.{yaml,toml}
  ./configs/shooter.{yaml,toml}

The output is a complete config file and can be saved as a starting point.

Examples:
  shooter config
  shooter config --format toml > configs/shooter.toml`,
	Annotations: map[string]string{logToStderr: ""},
	RunE:        runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagFormat)
	}

	out, err := config.Marshal(shooterCfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
