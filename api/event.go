package api

import "fmt"

// KeyType enumerates the recognized keyboard inputs.
type KeyType int

// Key types, per spec.md §3.
const (
	KeyBackspace KeyType = iota
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyBackTab
	KeyDelete
	KeyInsert
	KeyF
	KeyChar
	KeyAlt
	KeyCtrl
	KeyNull
	KeyEsc
	KeyCtrlUp
	KeyCtrlDown
	KeyCtrlLeft
	KeyCtrlRight
	KeyShiftUp
	KeyShiftDown
	KeyShiftLeft
	KeyShiftRight
	// KeyPos is a supplemented variant (see SPEC_FULL.md §Supplemented features):
	// a CSI cursor-position report, carried as a KeyEvent so the dispatcher's
	// single InputEvent stream doesn't need a fourth top-level case for it.
	KeyPos
)

// KeyEvent is a single parsed keyboard input.
type KeyEvent struct {
	Type KeyType
	Rune rune // Char, Alt, Ctrl
	Num  uint8 // F(n)
	Col, Row int // KeyPos
}

// String renders a debug form of the key event.
//
//nolint:gocyclo // exhaustive switch over all key types, same shape as the teacher's KeyMsg.String
func (k KeyEvent) String() string {
	switch k.Type {
	case KeyChar:
		return fmt.Sprintf("Char(%q)", k.Rune)
	case KeyAlt:
		return fmt.Sprintf("Alt(%q)", k.Rune)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl(%q)", k.Rune)
	case KeyF:
		return fmt.Sprintf("F(%d)", k.Num)
	case KeyPos:
		return fmt.Sprintf("Pos(%d,%d)", k.Col, k.Row)
	case KeyBackspace:
		return "Backspace"
	case KeyEnter:
		return "Enter"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyTab:
		return "Tab"
	case KeyBackTab:
		return "BackTab"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyNull:
		return "Null"
	case KeyEsc:
		return "Esc"
	case KeyCtrlUp:
		return "CtrlUp"
	case KeyCtrlDown:
		return "CtrlDown"
	case KeyCtrlLeft:
		return "CtrlLeft"
	case KeyCtrlRight:
		return "CtrlRight"
	case KeyShiftUp:
		return "ShiftUp"
	case KeyShiftDown:
		return "ShiftDown"
	case KeyShiftLeft:
		return "ShiftLeft"
	case KeyShiftRight:
		return "ShiftRight"
	default:
		return "Unknown"
	}
}

// Char builds a KeyEvent for a plain printable rune.
func Char(r rune) KeyEvent { return KeyEvent{Type: KeyChar, Rune: r} }

// Alt builds a KeyEvent for Alt+rune.
func Alt(r rune) KeyEvent { return KeyEvent{Type: KeyAlt, Rune: r} }

// Ctrl builds a KeyEvent for Ctrl+rune.
func Ctrl(r rune) KeyEvent { return KeyEvent{Type: KeyCtrl, Rune: r} }

// F builds a KeyEvent for function key n (1-based).
func F(n uint8) KeyEvent { return KeyEvent{Type: KeyF, Num: n} }

// Pos builds a KeyEvent carrying a cursor-position report.
func Pos(col, row int) KeyEvent { return KeyEvent{Type: KeyPos, Col: col, Row: row} }

// MouseButton enumerates the buttons/wheel directions a mouse event reports.
type MouseButton int

// Mouse buttons, per spec.md §3.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseWheelUp
	MouseWheelDown
)

// MouseEventType tags which MouseEvent variant is populated.
type MouseEventType int

// Mouse event variants, per spec.md §3.
const (
	MousePress MouseEventType = iota
	MouseRelease
	MouseHold
	MouseUnknown
)

// MouseEvent is a single parsed mouse input.
type MouseEvent struct {
	Type      MouseEventType
	Button    MouseButton // Press
	Col, Row  int
}

// Press builds a button-press MouseEvent at (col, row), 0-based.
func Press(b MouseButton, col, row int) MouseEvent {
	return MouseEvent{Type: MousePress, Button: b, Col: col, Row: row}
}

// Release builds a button-release MouseEvent at (col, row), 0-based.
func Release(col, row int) MouseEvent {
	return MouseEvent{Type: MouseRelease, Col: col, Row: row}
}

// Hold builds a drag/hold MouseEvent at (col, row), 0-based.
func Hold(col, row int) MouseEvent {
	return MouseEvent{Type: MouseHold, Col: col, Row: row}
}

// InputEventKind tags which field of an InputEvent is populated.
type InputEventKind int

// InputEvent variants, per spec.md §3.
const (
	EventKeyboard InputEventKind = iota
	EventMouse
	EventUnknown
)

// InputEvent is the uniform event type produced by both the Unix byte-stream
// parser and the Windows INPUT_RECORD parser.
type InputEvent struct {
	Kind     InputEventKind
	Keyboard KeyEvent
	Mouse    MouseEvent
}

// Keyboard builds a keyboard InputEvent.
func Keyboard(k KeyEvent) InputEvent { return InputEvent{Kind: EventKeyboard, Keyboard: k} }

// MouseInput builds a mouse InputEvent.
func MouseInput(m MouseEvent) InputEvent { return InputEvent{Kind: EventMouse, Mouse: m} }

// Unknown is the catch-all for malformed or unrecognized input.
var Unknown = InputEvent{Kind: EventUnknown}
