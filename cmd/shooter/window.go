//go:build sdl

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sdl-shooter/internal/core"
	"github.com/vovakirdan/sdl-shooter/internal/games/shooter"
	"github.com/vovakirdan/sdl-shooter/internal/platform/window"
	"github.com/vovakirdan/sdl-shooter/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in an SDL2 window",
	Long: `Open an SDL2 window and play the specified game with the sprite
sheets from the configured assets directory.

Controls:
  Arrows/WASD  - Fly
  Space        - Fire (hold)
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit

Examples:
  shooter window shooter
  shooter window flight --config ./configs/shooter.yaml`,
	Annotations: map[string]string{logToStderr: ""},
	Args:        cobra.ExactArgs(1),
	Run:         runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) {
	gameID := args[0]

	g, err := registry.Create(gameID, shooterCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := g.(window.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q cannot be drawn in a window\n", gameID)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  shooterCfg.Screen.Width,
		ScreenH:  shooterCfg.Screen.Height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	if err := window.Run(game, g.Title(), shooter.SheetFiles(shooterCfg.Assets), cfg, logger); err != nil {
		logger.Error("window failed", "error", err)
		os.Exit(1)
	}
}
