package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// keyIntent maps a key in play mode to a controller intent.
func keyIntent(key tcell.Key, r rune) (game.Intent, bool) {
	switch key {
	case tcell.KeyRight:
		return game.Steer(types.Right), true
	case tcell.KeyDown:
		return game.Steer(types.Down), true
	case tcell.KeyLeft:
		return game.Steer(types.Left), true
	case tcell.KeyUp:
		return game.Steer(types.Up), true
	case tcell.KeyRune:
	default:
		return game.Intent{}, false
	}

	switch unicode.ToLower(r) {
	case 'd':
		return game.Steer(types.Right), true
	case 's':
		return game.Steer(types.Down), true
	case 'a':
		return game.Steer(types.Left), true
	case 'w':
		return game.Steer(types.Up), true
	case ' ':
		return game.Control(game.IntentStart), true
	case 'p':
		return game.Control(game.IntentTogglePause), true
	case 'r':
		return game.Control(game.IntentRestart), true
	}
	return game.Intent{}, false
}

func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && unicode.ToLower(r) == 'q')
}
