// Package input translates key presses into session intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone         IntentType = iota
	IntentQuit                    // q, Esc, Ctrl+C
	IntentReload                  // r
	IntentCyclePalette            // c
)

var intentNames = map[IntentType]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentReload:       "reload",
	IntentCyclePalette: "cycle_palette",
}

func (i IntentType) String() string {
	if n, ok := intentNames[i]; ok {
		return n
	}
	return "unknown"
}
