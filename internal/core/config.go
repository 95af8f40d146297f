package core

// RuntimeConfig is what a frontend tells a game when (re)starting it.
// The shooter's playfield size comes from its own config; ScreenW and ScreenH
// are the frontend surface, used only for presentation.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in columns or pixels
	ScreenH  int   // Surface height in rows or pixels
	TickRate int   // Frontend steps per second
	Seed     int64 // RNG seed; 0 lets the frontend pick one
}

// DefaultRuntimeConfig is an 80x24 terminal stepping at 60 Hz.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the part of a game the frontend reacts to.
type GameState struct {
	Score    int  // Enemies destroyed this session
	GameOver bool // Set once per session, cleared only by Reset
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
