// Package mode defines the game's top-level presentation modes and the
// triggers that move between them.
package mode

// Mode represents one of the game's top-level presentation modes
type Mode int

const (
	ModeStart Mode = iota
	ModeCutscene
	ModeActive
	ModeFailed
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "Start"
	case ModeCutscene:
		return "Cutscene"
	case ModeActive:
		return "Active"
	case ModeFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Trigger is an externally delivered event requesting a mode change.
type Trigger int

const (
	// TriggerNone means no transition is requested.
	TriggerNone Trigger = iota
	TriggerStart
	TriggerAdvance
	TriggerFail
	TriggerReturnToMenu
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	switch t {
	case TriggerNone:
		return "None"
	case TriggerStart:
		return "Start"
	case TriggerAdvance:
		return "Advance"
	case TriggerFail:
		return "Fail"
	case TriggerReturnToMenu:
		return "ReturnToMenu"
	default:
		return "Unknown"
	}
}

// Next returns the mode reached by firing t while in m.
// ok is false when t is not a valid edge from m; next is then m unchanged.
func Next(m Mode, t Trigger) (next Mode, ok bool) {
	switch {
	case m == ModeStart && t == TriggerStart:
		return ModeCutscene, true
	case m == ModeCutscene && t == TriggerAdvance:
		return ModeActive, true
	case m == ModeActive && t == TriggerFail:
		return ModeFailed, true
	case m == ModeFailed && t == TriggerReturnToMenu:
		return ModeStart, true
	}
	return m, false
}
