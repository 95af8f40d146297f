// shooter is a 2D space shooter for the terminal, SSH sessions and, when
// built with -tags sdl, an SDL2 window.
//
// Usage:
//
//	shooter list              - List available games
//	shooter play <game>       - Play a game in the terminal
//	shooter menu              - Pick games interactively
//	shooter serve             - Start SSH server for remote play
//	shooter config            - Print the effective configuration
//	shooter window <game>     - Play in an SDL2 window (built with -tags sdl)
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load configuration from a YAML or TOML file
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sdl-shooter/internal/config"
	"github.com/vovakirdan/sdl-shooter/internal/logging"

	// Import games to register them
	_ "github.com/vovakirdan/sdl-shooter/internal/games/shooter"
)

// logToStderr marks commands whose logs go to stderr when no log file is set.
const logToStderr = "log-stderr"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Set up by the root command before any subcommand runs
	shooterCfg config.ShooterConfig
	logger     *log.Logger
	closeLog   = func() error { return nil }
)

func main() {
	err := rootCmd.Execute()
	//nolint:errcheck // Nothing useful to do if the log file fails to close
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - fly, shoot, survive",
	Long: `Space Shooter is a small vertical shooter. Fly the ship with the
arrow keys, hold space to fire and destroy the enemies before they reach you.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  shooter list
  shooter play shooter
  shooter play flight --fps 30
  shooter menu --config ./my-shooter.toml
  shooter serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	var fallback io.Writer = io.Discard
	if _, ok := cmd.Annotations[logToStderr]; ok {
		fallback = os.Stderr
	}

	l, closeFn, err := logging.New(flagLogLevel, flagLogFile, fallback)
	if err != nil {
		return err
	}
	logger, closeLog = l, closeFn

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	shooterCfg = cfg
	logger.Debug("config loaded", "path", flagConfig, "screen_w", cfg.Screen.Width, "screen_h", cfg.Screen.Height)
	return nil
}
