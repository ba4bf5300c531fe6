package core

// Cue identifies a feedback sound. Players that cannot produce a cue ignore it.
type Cue string

// The fixed set of cues a game may emit.
const (
	CueHappy        Cue = "happy"
	CueFoodMismatch Cue = "foodMismatch"
	CueToyMismatch  Cue = "toyMismatch"
	CueSwitch       Cue = "switch"
)

// Cues lists every known cue in a stable order.
func Cues() []Cue {
	return []Cue{CueHappy, CueFoodMismatch, CueToyMismatch, CueSwitch}
}

// Valid reports whether c is one of the known cues.
func (c Cue) Valid() bool {
	switch c {
	case CueHappy, CueFoodMismatch, CueToyMismatch, CueSwitch:
		return true
	}
	return false
}
