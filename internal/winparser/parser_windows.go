//go:build windows

// Package winparser turns Win32 console INPUT_RECORD values into
// api.InputEvent values, mirroring what the Unix byte-stream parser produces
// so the dispatcher can treat both backends uniformly.
package winparser

import (
	"github.com/climbch/vterm/api"
	"github.com/climbch/vterm/internal/wincon"
)

// Virtual-key codes this parser recognizes by name.
const (
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12
	vkBack    = 0x08
	vkEscape  = 0x1B
	vkReturn  = 0x0D
	vkPrior   = 0x21 // PageUp
	vkNext    = 0x22 // PageDown
	vkEnd     = 0x23
	vkHome    = 0x24
	vkLeft    = 0x25
	vkUp      = 0x26
	vkRight   = 0x27
	vkDown    = 0x28
	vkInsert  = 0x2D
	vkDelete  = 0x2E
	vkF1      = 0x70
	vkF12     = 0x7B
)

const (
	leftAltPressed   = 0x0002
	rightAltPressed  = 0x0001
	leftCtrlPressed  = 0x0008
	rightCtrlPressed = 0x0004
	shiftPressed     = 0x0010
)

// ParseRecord converts one Win32 INPUT_RECORD into an api.InputEvent. It
// returns ok=false for records that carry no user-visible event: key-up,
// focus, menu, and (for now) window-buffer-size records.
func ParseRecord(r *wincon.InputRecord) (event api.InputEvent, ok bool) {
	switch r.EventType {
	case wincon.KeyEvent:
		k := r.AsKeyEvent()
		if k.KeyDown == 0 {
			return api.InputEvent{}, false
		}
		return api.Keyboard(parseKeyEvent(k)), true
	case wincon.MouseEvent:
		m := r.AsMouseEvent()
		ev, recognized := parseMouseEvent(m)
		if !recognized {
			return api.InputEvent{}, false
		}
		return api.MouseInput(ev), true
	default:
		return api.InputEvent{}, false
	}
}

func hasState(state uint32, bits uint32) bool { return state&bits != 0 }

func parseKeyEvent(k *wincon.KeyEventRecord) api.KeyEvent {
	code := int(k.VirtualKeyCode)
	state := k.ControlKeyState

	switch code {
	case vkShift, vkControl, vkMenu:
		return api.KeyEvent{Type: api.KeyNull}
	case vkBack:
		return api.KeyEvent{Type: api.KeyBackspace}
	case vkEscape:
		return api.KeyEvent{Type: api.KeyEsc}
	case vkReturn:
		return api.KeyEvent{Type: api.KeyEnter}
	}

	if code >= vkF1 && code <= vkF12 {
		return api.F(uint8(code - 111))
	}

	switch code {
	case vkLeft, vkUp, vkRight, vkDown:
		ctrl := hasState(state, leftCtrlPressed|rightCtrlPressed)
		shift := hasState(state, shiftPressed)
		switch code {
		case vkLeft:
			switch {
			case ctrl:
				return api.KeyEvent{Type: api.KeyCtrlLeft}
			case shift:
				return api.KeyEvent{Type: api.KeyShiftLeft}
			default:
				return api.KeyEvent{Type: api.KeyLeft}
			}
		case vkUp:
			switch {
			case ctrl:
				return api.KeyEvent{Type: api.KeyCtrlUp}
			case shift:
				return api.KeyEvent{Type: api.KeyShiftUp}
			default:
				return api.KeyEvent{Type: api.KeyUp}
			}
		case vkRight:
			switch {
			case ctrl:
				return api.KeyEvent{Type: api.KeyCtrlRight}
			case shift:
				return api.KeyEvent{Type: api.KeyShiftRight}
			default:
				return api.KeyEvent{Type: api.KeyRight}
			}
		default: // vkDown
			switch {
			case ctrl:
				return api.KeyEvent{Type: api.KeyCtrlDown}
			case shift:
				return api.KeyEvent{Type: api.KeyShiftDown}
			default:
				return api.KeyEvent{Type: api.KeyDown}
			}
		}
	case vkPrior:
		return api.KeyEvent{Type: api.KeyPageUp}
	case vkNext:
		return api.KeyEvent{Type: api.KeyPageDown}
	case vkHome:
		return api.KeyEvent{Type: api.KeyHome}
	case vkEnd:
		return api.KeyEvent{Type: api.KeyEnd}
	case vkDelete:
		return api.KeyEvent{Type: api.KeyDelete}
	case vkInsert:
		return api.KeyEvent{Type: api.KeyInsert}
	}

	chraw := k.UnicodeChar
	if chraw >= 255 {
		return api.KeyEvent{Type: api.KeyNull}
	}
	ch := rune(byte(chraw))

	switch {
	case hasState(state, leftAltPressed|rightAltPressed):
		cmd := rune(byte(k.VirtualKeyCode))
		if (cmd >= 'a' && cmd <= 'z') || (cmd >= 'A' && cmd <= 'Z') {
			return api.Alt(cmd)
		}
		return api.KeyEvent{Type: api.KeyNull}
	case hasState(state, leftCtrlPressed|rightCtrlPressed):
		b := byte(chraw)
		switch {
		case b >= 0x01 && b <= 0x1A:
			return api.Ctrl(rune(b - 0x1 + 'a'))
		case b >= 0x1C && b <= 0x1F:
			return api.Ctrl(rune(b - 0x1C + '4'))
		default:
			return api.KeyEvent{Type: api.KeyNull}
		}
	case hasState(state, shiftPressed):
		if ch == '\t' {
			return api.KeyEvent{Type: api.KeyBackTab}
		}
		return api.Char(ch)
	default:
		if ch == '\t' {
			return api.KeyEvent{Type: api.KeyTab}
		}
		return api.Char(ch)
	}
}

// Button-state and event-flag codes from the MOUSE_EVENT_RECORD contract.
const (
	buttonRelease     = 0x0000
	buttonLeft1st     = 0x0001
	buttonRightmost   = 0x0002
	buttonLeft2nd     = 0x0004
	flagPressRelease  = 0x0000
	flagDoubleClick   = 0x0002
	flagMouseMoved    = 0x0001
	flagMouseWheeled  = 0x0004
	flagMouseHWheeled = 0x0008
)

func parseMouseEvent(m *wincon.MouseEventRecord) (api.MouseEvent, bool) {
	col := int(m.MousePosition.X)
	row := int(m.MousePosition.Y)

	switch m.EventFlags {
	case flagPressRelease:
		switch m.ButtonState {
		case buttonRelease:
			return api.Release(col, row), true
		case buttonLeft1st:
			return api.Press(api.MouseLeft, col, row), true
		case buttonRightmost:
			return api.Press(api.MouseRight, col, row), true
		case buttonLeft2nd:
			return api.Press(api.MouseMiddle, col, row), true
		default:
			return api.MouseEvent{}, false
		}
	case flagMouseMoved:
		if m.ButtonState != buttonRelease {
			return api.Hold(col, row), true
		}
		return api.MouseEvent{}, false
	case flagMouseWheeled:
		if int32(m.ButtonState) >= 0 {
			return api.Press(api.MouseWheelUp, col, row), true
		}
		return api.Press(api.MouseWheelDown, col, row), true
	case flagDoubleClick, flagMouseHWheeled:
		// Double-click and horizontal wheel are recognized but unmapped, per
		// spec.md §4.4.2.
		return api.MouseEvent{Type: api.MouseUnknown}, true
	default:
		return api.MouseEvent{}, false
	}
}
