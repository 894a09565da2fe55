package terminal

import "github.com/gdamore/tcell/v2"

// Key is what the game understands of a key press.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyInterrupt
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "other"
	}
}

// mapKey translates a tcell key event. hjkl move like the arrows.
func mapKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return KeyInterrupt
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return KeyUp
		case 'j':
			return KeyDown
		case 'h':
			return KeyLeft
		case 'l':
			return KeyRight
		case ' ':
			return KeyEnter
		}
	}

	return KeyOther
}
