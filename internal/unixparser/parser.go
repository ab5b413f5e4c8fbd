// Package unixparser turns a Unix terminal's raw stdin byte stream into
// api.InputEvent values, one event per call to ParseEvent. It consumes only
// the bytes belonging to the sequence it is decoding, leaving the reader
// positioned at the start of the next one.
package unixparser

import (
	"bufio"
	"fmt"
	"unicode/utf8"

	"github.com/climbch/vterm/api"
)

// ParseEvent decodes one input event starting at the already-read byte b,
// pulling any further bytes the sequence needs from r.
func ParseEvent(b byte, r *bufio.Reader) (api.InputEvent, error) {
	switch {
	case b == 0x1B:
		return parseEsc(r)
	case b == '\n' || b == '\r':
		return api.Keyboard(api.KeyEvent{Type: api.KeyEnter}), nil
	case b == '\t':
		return api.Keyboard(api.KeyEvent{Type: api.KeyTab}), nil
	case b == 0x7F:
		return api.Keyboard(api.KeyEvent{Type: api.KeyBackspace}), nil
	case b >= 0x01 && b <= 0x1A:
		return api.Keyboard(api.Ctrl(rune(b - 0x1 + 'a'))), nil
	case b >= 0x1C && b <= 0x1F:
		return api.Keyboard(api.Ctrl(rune(b-0x1C+'4'))), nil
	case b == 0x00:
		return api.Keyboard(api.KeyEvent{Type: api.KeyNull}), nil
	default:
		ch, err := parseUTF8Char(b, r)
		if err != nil {
			return api.Unknown, err
		}
		return api.Keyboard(api.Char(ch)), nil
	}
}

func parseEsc(r *bufio.Reader) (api.InputEvent, error) {
	a, err := r.ReadByte()
	if err != nil {
		// Nothing followed the escape byte: a bare press of the ESC key.
		return api.Keyboard(api.KeyEvent{Type: api.KeyEsc}), nil
	}
	switch a {
	case 'O':
		val, err := r.ReadByte()
		if err != nil {
			return api.Unknown, fmt.Errorf("unixparser: truncated SS3 sequence")
		}
		if val >= 'P' && val <= 'S' {
			return api.Keyboard(api.F(1 + (val - 'P'))), nil
		}
		return api.Unknown, fmt.Errorf("unixparser: unrecognized SS3 sequence 0x%x", val)
	case '[':
		return parseCSI(r)
	case 0x1B:
		return api.Keyboard(api.KeyEvent{Type: api.KeyEsc}), nil
	default:
		ch, err := parseUTF8Char(a, r)
		if err != nil {
			return api.Unknown, err
		}
		return api.Keyboard(api.Alt(ch)), nil
	}
}

func parseCSI(r *bufio.Reader) (api.InputEvent, error) {
	c, err := r.ReadByte()
	if err != nil {
		return api.Unknown, fmt.Errorf("unixparser: truncated CSI sequence")
	}
	switch c {
	case 'D':
		return api.Keyboard(api.KeyEvent{Type: api.KeyLeft}), nil
	case 'C':
		return api.Keyboard(api.KeyEvent{Type: api.KeyRight}), nil
	case 'A':
		return api.Keyboard(api.KeyEvent{Type: api.KeyUp}), nil
	case 'B':
		return api.Keyboard(api.KeyEvent{Type: api.KeyDown}), nil
	case 'H':
		return api.Keyboard(api.KeyEvent{Type: api.KeyHome}), nil
	case 'F':
		return api.Keyboard(api.KeyEvent{Type: api.KeyEnd}), nil
	case 'Z':
		return api.Keyboard(api.KeyEvent{Type: api.KeyBackTab}), nil
	case 'M':
		return parseX10Mouse(r)
	case '<':
		return parseSGRMouse(r)
	default:
		if c >= '0' && c <= '9' {
			return parseNumbered(c, r)
		}
		return api.Unknown, fmt.Errorf("unixparser: unrecognized CSI final byte 0x%x", c)
	}
}

// parseX10Mouse reads the legacy 3-byte X10 mouse encoding: CB CX CY, each
// offset by 32.
func parseX10Mouse(r *bufio.Reader) (api.InputEvent, error) {
	cb, err := r.ReadByte()
	if err != nil {
		return api.Unknown, fmt.Errorf("unixparser: truncated X10 mouse sequence")
	}
	cx, err := r.ReadByte()
	if err != nil {
		return api.Unknown, fmt.Errorf("unixparser: truncated X10 mouse sequence")
	}
	cy, err := r.ReadByte()
	if err != nil {
		return api.Unknown, fmt.Errorf("unixparser: truncated X10 mouse sequence")
	}

	code := int8(cb) - 32
	col := int(subSat(cx, 33))
	row := int(subSat(cy, 33))

	switch code & 0b11 {
	case 0:
		if code&0x40 != 0 {
			return api.MouseInput(api.Press(api.MouseWheelUp, col, row)), nil
		}
		return api.MouseInput(api.Press(api.MouseLeft, col, row)), nil
	case 1:
		if code&0x40 != 0 {
			return api.MouseInput(api.Press(api.MouseWheelDown, col, row)), nil
		}
		return api.MouseInput(api.Press(api.MouseMiddle, col, row)), nil
	case 2:
		return api.MouseInput(api.Press(api.MouseRight, col, row)), nil
	case 3:
		return api.MouseInput(api.Release(col, row)), nil
	default:
		return api.MouseInput(api.MouseEvent{Type: api.MouseUnknown}), nil
	}
}

func subSat(v, n byte) byte {
	if v < n {
		return 0
	}
	return v - n
}

// parseSGRMouse reads "Cb;Cx;Cy(M|m)" SGR extended mouse reporting, which
// does not saturate coordinates the way X10 does and so supports screens
// wider than 223 columns.
func parseSGRMouse(r *bufio.Reader) (api.InputEvent, error) {
	buf, final, err := readUntilFinal(r, "Mm")
	if err != nil {
		return api.Unknown, err
	}
	var cb, cx, cy int
	if _, err := fmt.Sscanf(string(buf), "%d;%d;%d", &cb, &cx, &cy); err != nil {
		return api.Unknown, fmt.Errorf("unixparser: malformed SGR mouse sequence %q: %w", buf, err)
	}
	// Wire coordinates are 1-based; the event model is 0-based.
	cx--
	cy--

	switch {
	case cb >= 0 && cb <= 2 || cb == 64 || cb == 65:
		btn := map[int]api.MouseButton{0: api.MouseLeft, 1: api.MouseMiddle, 2: api.MouseRight, 64: api.MouseWheelUp, 65: api.MouseWheelDown}[cb]
		if final == 'M' {
			return api.MouseInput(api.Press(btn, cx, cy)), nil
		}
		return api.MouseInput(api.Release(cx, cy)), nil
	case cb == 32:
		return api.MouseInput(api.Hold(cx, cy)), nil
	case cb == 3:
		return api.MouseInput(api.Release(cx, cy)), nil
	default:
		return api.Unknown, nil
	}
}

func readUntilFinal(r *bufio.Reader, finals string) ([]byte, byte, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, 0, fmt.Errorf("unixparser: truncated sequence: %w", err)
		}
		for i := 0; i < len(finals); i++ {
			if b == finals[i] {
				return buf, b, nil
			}
		}
		buf = append(buf, b)
	}
}

// parseNumbered reads a CSI sequence that opens with a digit: rxvt mouse
// reporting, "~"-terminated special keys, modified-arrow sequences, and the
// cursor-position report this backend adds beyond the original parser (see
// SPEC_FULL.md's supplemented-features section).
func parseNumbered(first byte, r *bufio.Reader) (api.InputEvent, error) {
	buf := []byte{first}
	for {
		c, err := r.ReadByte()
		if err != nil {
			return api.Unknown, fmt.Errorf("unixparser: truncated numbered CSI sequence")
		}
		if c >= 64 && c <= 126 {
			return dispatchNumbered(buf, c)
		}
		buf = append(buf, c)
	}
}

func dispatchNumbered(buf []byte, final byte) (api.InputEvent, error) {
	switch final {
	case 'M':
		return parseRxvtMouse(buf)
	case '~':
		return parseTilde(buf)
	case 'R':
		return parseCursorPos(buf)
	default:
		if len(buf) == 0 {
			return api.Unknown, nil
		}
		switch [2]byte{buf[len(buf)-1], final} {
		case [2]byte{'5', 'A'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyCtrlUp}), nil
		case [2]byte{'5', 'B'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyCtrlDown}), nil
		case [2]byte{'5', 'C'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyCtrlRight}), nil
		case [2]byte{'5', 'D'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyCtrlLeft}), nil
		case [2]byte{'2', 'A'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyShiftUp}), nil
		case [2]byte{'2', 'B'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyShiftDown}), nil
		case [2]byte{'2', 'C'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyShiftRight}), nil
		case [2]byte{'2', 'D'}:
			return api.Keyboard(api.KeyEvent{Type: api.KeyShiftLeft}), nil
		default:
			return api.Unknown, nil
		}
	}
}

func parseRxvtMouse(buf []byte) (api.InputEvent, error) {
	var cb, cx, cy int
	if _, err := fmt.Sscanf(string(buf), "%d;%d;%d", &cb, &cx, &cy); err != nil {
		return api.Unknown, fmt.Errorf("unixparser: malformed rxvt mouse sequence %q: %w", buf, err)
	}
	switch cb {
	case 32:
		return api.MouseInput(api.Press(api.MouseLeft, cx, cy)), nil
	case 33:
		return api.MouseInput(api.Press(api.MouseMiddle, cx, cy)), nil
	case 34:
		return api.MouseInput(api.Press(api.MouseRight, cx, cy)), nil
	case 35:
		return api.MouseInput(api.Release(cx, cy)), nil
	case 64:
		return api.MouseInput(api.Hold(cx, cy)), nil
	case 96, 97:
		return api.MouseInput(api.Press(api.MouseWheelUp, cx, cy)), nil
	default:
		return api.MouseInput(api.MouseEvent{Type: api.MouseUnknown}), nil
	}
}

func parseTilde(buf []byte) (api.InputEvent, error) {
	var n int
	if _, err := fmt.Sscanf(string(buf), "%d", &n); err != nil {
		return api.Unknown, fmt.Errorf("unixparser: malformed special-key sequence %q: %w", buf, err)
	}
	switch {
	case n == 1 || n == 7:
		return api.Keyboard(api.KeyEvent{Type: api.KeyHome}), nil
	case n == 2:
		return api.Keyboard(api.KeyEvent{Type: api.KeyInsert}), nil
	case n == 3:
		return api.Keyboard(api.KeyEvent{Type: api.KeyDelete}), nil
	case n == 4 || n == 8:
		return api.Keyboard(api.KeyEvent{Type: api.KeyEnd}), nil
	case n == 5:
		return api.Keyboard(api.KeyEvent{Type: api.KeyPageUp}), nil
	case n == 6:
		return api.Keyboard(api.KeyEvent{Type: api.KeyPageDown}), nil
	case n >= 11 && n <= 15:
		return api.Keyboard(api.F(uint8(n - 10))), nil
	case n >= 17 && n <= 21:
		return api.Keyboard(api.F(uint8(n - 11))), nil
	case n >= 23 && n <= 24:
		return api.Keyboard(api.F(uint8(n - 12))), nil
	default:
		return api.Unknown, nil
	}
}

// parseCursorPos decodes a CSI cursor-position report, "row;colR", emitted
// in response to the DSR 6n query. This is not in the original parser
// (see SPEC_FULL.md's supplemented-features section): Windows-console callers
// get cursor position natively, so Unix gains this path to match.
func parseCursorPos(buf []byte) (api.InputEvent, error) {
	var row, col int
	if _, err := fmt.Sscanf(string(buf), "%d;%d", &row, &col); err != nil {
		return api.Unknown, fmt.Errorf("unixparser: malformed cursor-position report %q: %w", buf, err)
	}
	return api.Keyboard(api.Pos(col-1, row-1)), nil
}

func parseUTF8Char(c byte, r *bufio.Reader) (rune, error) {
	if c < 0x80 {
		return rune(c), nil
	}
	buf := []byte{c}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		next, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("unixparser: truncated UTF-8 sequence")
		}
		buf = append(buf, next)
	}
	ch, size := utf8.DecodeRune(buf)
	if size == 0 || ch == utf8.RuneError {
		return 0, fmt.Errorf("unixparser: invalid UTF-8 input")
	}
	return ch, nil
}
