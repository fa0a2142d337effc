package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// runeTable binds printable keys; lookups are case-insensitive
var runeTable = map[rune]IntentType{
	'q': IntentQuit,
	'r': IntentReload,
	'c': IntentCyclePalette,
}

// specialTable binds non-rune keys
var specialTable = map[tcell.Key]IntentType{
	tcell.KeyEscape: IntentQuit,
	tcell.KeyCtrlC:  IntentQuit,
}

// Handle classifies a key event; nil and unbound keys yield IntentNone
func Handle(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		// Modified runes (Alt+q etc.) are not bindings
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl|tcell.ModMeta) != 0 {
			return IntentNone
		}
		return runeTable[unicode.ToLower(ev.Rune())]
	}
	return specialTable[ev.Key()]
}
