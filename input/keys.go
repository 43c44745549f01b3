package input

import "github.com/gdamore/tcell/v2"

// IntentType discriminates semantic key actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentPause      // p, Space
	IntentReset      // r
	IntentToggleMute // m, Ctrl+S
)

func (i IntentType) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentQuit:
		return "Quit"
	case IntentPause:
		return "Pause"
	case IntentReset:
		return "Reset"
	case IntentToggleMute:
		return "ToggleMute"
	default:
		return "Unknown"
	}
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType
	// Printable bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'p': IntentPause,
			' ': IntentPause,
			'r': IntentReset,
			'm': IntentToggleMute,
		},
	}
}

// Lookup resolves a key event; unbound keys yield IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
