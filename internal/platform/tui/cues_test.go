package tui

import (
	"bytes"
	"testing"

	"github.com/vovakirdan/kemono/internal/core"
)

func TestBellCuePlayerRingsEnabledCues(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellCuePlayer(&buf, map[core.Cue]bool{core.CueHappy: true})

	p.Play(core.CueHappy)
	p.Play(core.CueFoodMismatch)
	p.Play(core.CueHappy)

	if got := buf.String(); got != "\a\a" {
		t.Errorf("output = %q, want two bells", got)
	}
	if p.Enabled(core.CueSwitch) {
		t.Error("switch should be disabled")
	}
}

func TestBellCuePlayerDefaultsToAll(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellCuePlayer(&buf, nil)

	for _, c := range core.Cues() {
		if !p.Enabled(c) {
			t.Errorf("%s should be enabled", c)
		}
		p.Play(c)
	}
	if buf.Len() != len(core.Cues()) {
		t.Errorf("rang %d times", buf.Len())
	}
}

func TestBellCuePlayerEmptySetMutes(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellCuePlayer(&buf, map[core.Cue]bool{})

	for _, c := range core.Cues() {
		if p.Enabled(c) {
			t.Errorf("%s should be muted", c)
		}
		p.Play(c)
	}
	if buf.Len() != 0 {
		t.Errorf("rang %d times", buf.Len())
	}
}

func TestBellCuePlayerNilWriter(t *testing.T) {
	p := NewBellCuePlayer(nil, nil)
	p.Play(core.CueHappy) // must not panic

	var nilPlayer *BellCuePlayer
	nilPlayer.Play(core.CueHappy)
}

func TestCueLabels(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range core.Cues() {
		label := cueLabel(c)
		if label == "" || seen[label] {
			t.Errorf("cue %s has label %q", c, label)
		}
		seen[label] = true
	}
	if cueLabel("custom") != "custom" {
		t.Error("unknown cues fall back to their name")
	}
}
