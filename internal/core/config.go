package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Collision ended the run
	Won      bool // Playfield filled, nowhere left to place food
	Paused   bool // Whether the game is paused
}

// Ended reports whether the run is in a terminal state.
func (s GameState) Ended() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Delay is how long the platform waits before the next Step.
	Delay time.Duration

	// Ate is set on the tick the snake ate food.
	Ate bool

	// Ended is set only on the tick the run became terminal.
	Ended bool

	// Cause names why the run ended ("self", "wall", "grid_full").
	Cause string

	// Err is set when a restart could not start a new run. The previous
	// run is kept.
	Err error
}
