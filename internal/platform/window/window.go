//go:build sdl

// Package window runs games in an SDL2 window, drawing each sprite from its
// sheet texture.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/sdl-shooter/internal/core"
	"github.com/vovakirdan/sdl-shooter/internal/registry"
)

// Game is a registry game that also exposes its frame as draw calls.
type Game interface {
	registry.Game
	core.Drawer
}

// Window owns the SDL window, renderer and sheet textures.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	textures map[core.Sheet]*sdl.Texture
	calls    []core.DrawCall
	logger   *log.Logger
}

// Open initialises SDL and creates a centered window of the given size.
func Open(title string, width, height int, logger *log.Logger) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	if err := img.Init(img.INIT_PNG); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl_image init: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(width), int32(height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		img.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		window.Destroy()
		img.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Window{
		window:   window,
		renderer: renderer,
		textures: make(map[core.Sheet]*sdl.Texture),
		logger:   logger,
	}, nil
}

// LoadSheets loads one texture per sprite sheet image.
func (w *Window) LoadSheets(files map[core.Sheet]string) error {
	for sheet, path := range files {
		surface, err := img.Load(path)
		if err != nil {
			return fmt.Errorf("load %s sheet %s: %w", sheet, path, err)
		}
		texture, err := w.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return fmt.Errorf("create %s texture: %w", sheet, err)
		}
		w.textures[sheet] = texture
		w.logger.Debug("sheet loaded", "sheet", sheet, "path", path)
	}
	return nil
}

// Close releases the textures, renderer and window and shuts SDL down.
func (w *Window) Close() {
	for sheet, texture := range w.textures {
		texture.Destroy()
		delete(w.textures, sheet)
	}
	w.renderer.Destroy()
	w.window.Destroy()
	img.Quit()
	sdl.Quit()
}

// Draw clears the window, copies every draw call from its sheet and presents.
func (w *Window) Draw(d core.Drawer) {
	//nolint:errcheck // A failed clear only shows a stale frame
	w.renderer.SetDrawColor(0, 0, 0, 255) // Black background
	w.renderer.Clear()

	w.calls = d.DrawCalls(w.calls[:0])
	for _, call := range w.calls {
		texture, ok := w.textures[call.Sheet]
		if !ok {
			continue
		}
		src, dst := sdlRect(call.Src), sdlRect(call.Dst)
		if err := w.renderer.Copy(texture, &src, &dst); err != nil {
			w.logger.Warn("copy failed", "sheet", call.Sheet, "error", err)
		}
	}

	w.renderer.Present()
}

func sdlRect(r core.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

// Run opens a window for game, loads its sheets and plays until the window
// is closed or Q is pressed. Asset failures are fatal.
func Run(game Game, title string, sheets map[core.Sheet]string, cfg core.RuntimeConfig, logger *log.Logger) error {
	width, height := game.Bounds()
	w, err := Open(title, width, height, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.LoadSheets(sheets); err != nil {
		logger.Fatal("cannot load sprite sheets", "error", err)
	}

	game.Reset(cfg)
	logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)

	stopwatch := core.NewStopwatch(core.ClockFunc(func() uint64 {
		return uint64(sdl.GetTicks64())
	}))
	frame := core.NewInputFrame()
	wasOver := false

	for {
		quit := false
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				quit = true
			case *sdl.KeyboardEvent:
				ev, ok := keyEvent(e)
				if !ok {
					continue
				}
				switch ev.Action {
				case core.ActionQuit:
					quit = true
				case core.ActionRestart:
					if ev.Down && !ev.Repeat && game.State().GameOver {
						cfg.Seed = int64(sdl.GetTicks64())
						game.Reset(cfg)
						stopwatch.Reset()
						frame.Clear()
						wasOver = false
						logger.Info("game restarted", "game", game.ID(), "seed", cfg.Seed)
					}
				default:
					frame.Add(ev)
				}
			}
		}
		if quit {
			return nil
		}

		frame.Dt = stopwatch.Lap()
		state := game.Step(frame).State
		if state.GameOver && !wasOver {
			logger.Info("game over", "game", game.ID(), "score", state.Score)
		}
		wasOver = state.GameOver
		frame.Clear()

		w.Draw(game)
	}
}

// keyEvent translates an SDL keyboard event into a key edge.
func keyEvent(e *sdl.KeyboardEvent) (core.KeyEvent, bool) {
	action := keyAction(e.Keysym.Sym)
	if action == core.ActionNone {
		return core.KeyEvent{}, false
	}
	return core.KeyEvent{
		Action: action,
		Down:   e.Type == sdl.KEYDOWN,
		Repeat: e.Repeat != 0,
	}, true
}

func keyAction(sym sdl.Keycode) core.Action {
	switch sym {
	case sdl.K_UP, sdl.K_w:
		return core.ActionUp
	case sdl.K_DOWN, sdl.K_s:
		return core.ActionDown
	case sdl.K_LEFT, sdl.K_a:
		return core.ActionLeft
	case sdl.K_RIGHT, sdl.K_d:
		return core.ActionRight
	case sdl.K_SPACE:
		return core.ActionFire
	case sdl.K_p:
		return core.ActionPause
	case sdl.K_r:
		return core.ActionRestart
	case sdl.K_q, sdl.K_ESCAPE:
		return core.ActionQuit
	}
	return core.ActionNone
}
