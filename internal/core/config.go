package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState summarizes a session for the platform (status line, ledger).
type GameState struct {
	Collected      int  // Creatures with collected=true among the active roster
	Evolved        int  // Creatures that reached their evolved form
	Active         int  // Size of the active roster
	HiddenUnlocked bool // Whether the hidden pool has joined the roster
	CollectionOpen bool // Whether the collection browser overlay is visible
	Paused         bool // Whether the game refuses input (too small, paused)
}

// StepResult is returned by Game.Step after each simulation tick.
// Cues and Events only cover what happened during that tick.
type StepResult struct {
	State  GameState
	Cues   []Cue
	Events []Event
}
