package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.PickSlot(3)
	f.Set(ActionApply)
	f.Press(Pointer{X: 4, Y: 7, Button: PointerRight})
	f.Set(ActionNone)

	if len(f.Inputs) != 3 {
		t.Fatalf("expected 3 inputs (ActionNone dropped), got %d", len(f.Inputs))
	}
	if f.Inputs[0].Action != ActionPickItem || f.Inputs[0].Slot != 3 {
		t.Errorf("first input = %+v, expected PickItem slot 3", f.Inputs[0])
	}
	if f.Inputs[1].Action != ActionApply || f.Inputs[1].Slot != -1 {
		t.Errorf("second input = %+v, expected Apply with no slot", f.Inputs[1])
	}
	if p := f.Inputs[2].Pointer; p.X != 4 || p.Y != 7 || p.Button != PointerRight {
		t.Errorf("pointer = %+v, expected right press at (4, 7)", p)
	}
	if !f.Has(ActionApply) || f.Has(ActionSwitch) {
		t.Error("Has() does not reflect queued actions")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSwitch)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if clone.Empty() || !clone.Has(ActionSwitch) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleCollection.String() != "ToggleCollection" {
		t.Errorf("String() = %q", ActionToggleCollection.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}

func TestCueValid(t *testing.T) {
	for _, c := range Cues() {
		if !c.Valid() {
			t.Errorf("%q should be valid", c)
		}
	}
	if Cue("meow").Valid() {
		t.Error("unknown cue should not be valid")
	}
}
