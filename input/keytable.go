package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]IntentType
	// Rune bindings, matched lower-case
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
		},
		Runes: map[rune]IntentType{
			'h': IntentMoveLeft,
			'a': IntentMoveLeft,
			'l': IntentMoveRight,
			'd': IntentMoveRight,
			' ': IntentBegin,
			'r': IntentRestart,
			'p': IntentTogglePause,
			'm': IntentToggleMute,
			'q': IntentQuit,
		},
	}
}

// Lookup resolves a key event to an intent type
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
