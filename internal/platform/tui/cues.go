package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/kemono/internal/core"
)

// CuePlayer plays feedback cues. Implementations must not fail loudly:
// a cue that cannot be played is dropped.
type CuePlayer interface {
	Play(c core.Cue)
}

// NopCuePlayer is the silent provider.
type NopCuePlayer struct{}

// Play does nothing.
func (NopCuePlayer) Play(core.Cue) {}

// BellCuePlayer rings the terminal bell for enabled cues.
type BellCuePlayer struct {
	mu      sync.Mutex
	out     io.Writer
	enabled map[core.Cue]bool
}

// NewBellCuePlayer writes the bell to out for each enabled cue.
// A nil enabled set enables every cue; an empty one mutes them all.
func NewBellCuePlayer(out io.Writer, enabled map[core.Cue]bool) *BellCuePlayer {
	if enabled == nil {
		enabled = make(map[core.Cue]bool)
		for _, c := range core.Cues() {
			enabled[c] = true
		}
	}
	return &BellCuePlayer{out: out, enabled: enabled}
}

// Play rings the bell if c is enabled. Write errors are ignored.
func (b *BellCuePlayer) Play(c core.Cue) {
	if b == nil || b.out == nil || !b.enabled[c] {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.out, "\a")
}

// Enabled reports whether c would ring.
func (b *BellCuePlayer) Enabled(c core.Cue) bool {
	return b != nil && b.enabled[c]
}

// cueLabel is the text flashed in the status line for a cue.
func cueLabel(c core.Cue) string {
	switch c {
	case core.CueHappy:
		return "♪ happy"
	case core.CueFoodMismatch:
		return "✗ not that food"
	case core.CueToyMismatch:
		return "✗ not that toy"
	case core.CueSwitch:
		return "↻ switch"
	}
	return string(c)
}
