package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentPause},
		{"r", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntentString(t *testing.T) {
	if IntentReset.String() != "Reset" || IntentType(200).String() != "Unknown" {
		t.Error("unexpected intent names")
	}
}
