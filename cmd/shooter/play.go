package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sdl-shooter/internal/core"
	"github.com/vovakirdan/sdl-shooter/internal/platform/tui"
	"github.com/vovakirdan/sdl-shooter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD  - Fly
  Space        - Fire (hold)
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Terminals do not report key releases; a key counts as released shortly
after it stops auto-repeating.

Examples:
  shooter play shooter
  shooter play flight
  shooter play shooter --seed 42 --log-file ./shooter.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID, shooterCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, terminalConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the current terminal size
// and the global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
