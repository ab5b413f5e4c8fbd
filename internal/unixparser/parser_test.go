package unixparser

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climbch/vterm/api"
)

func parse(t *testing.T, seq string) api.InputEvent {
	t.Helper()
	r := bufio.NewReader(bytes.NewReader([]byte(seq[1:])))
	ev, err := ParseEvent(seq[0], r)
	require.NoError(t, err)
	return ev
}

func TestParseEvent_PlainChar(t *testing.T) {
	ev := parse(t, "a")
	assert.Equal(t, api.EventKeyboard, ev.Kind)
	assert.Equal(t, api.KeyChar, ev.Keyboard.Type)
	assert.Equal(t, 'a', ev.Keyboard.Rune)
}

func TestParseEvent_CtrlLetter(t *testing.T) {
	ev := parse(t, string(byte(0x01)))
	assert.Equal(t, api.KeyCtrl, ev.Keyboard.Type)
	assert.Equal(t, 'a', ev.Keyboard.Rune)
}

func TestParseEvent_Backspace(t *testing.T) {
	ev := parse(t, string(byte(0x7F)))
	assert.Equal(t, api.KeyBackspace, ev.Keyboard.Type)
}

func TestParseEvent_Enter(t *testing.T) {
	for _, b := range []byte{'\r', '\n'} {
		ev := parse(t, string(b))
		assert.Equal(t, api.KeyEnter, ev.Keyboard.Type, "byte 0x%x", b)
	}
}

func TestParseEvent_Tab(t *testing.T) {
	ev := parse(t, "\t")
	assert.Equal(t, api.KeyTab, ev.Keyboard.Type)
}

func TestParseEvent_ArrowKeys(t *testing.T) {
	cases := map[string]api.KeyType{
		"\x1b[A": api.KeyUp,
		"\x1b[B": api.KeyDown,
		"\x1b[C": api.KeyRight,
		"\x1b[D": api.KeyLeft,
	}
	for seq, want := range cases {
		ev := parse(t, seq)
		assert.Equal(t, want, ev.Keyboard.Type, "sequence %q", seq)
	}
}

func TestParseEvent_ModifiedArrow_CtrlUp(t *testing.T) {
	ev := parse(t, "\x1b[1;5A")
	assert.Equal(t, api.KeyCtrlUp, ev.Keyboard.Type)
}

func TestParseEvent_ModifiedArrow_ShiftRight(t *testing.T) {
	ev := parse(t, "\x1b[1;2C")
	assert.Equal(t, api.KeyShiftRight, ev.Keyboard.Type)
}

func TestParseEvent_FunctionKey_SS3(t *testing.T) {
	ev := parse(t, "\x1bOP")
	assert.Equal(t, api.KeyF, ev.Keyboard.Type)
	assert.Equal(t, uint8(1), ev.Keyboard.Num)
}

func TestParseEvent_FunctionKey_Tilde(t *testing.T) {
	ev := parse(t, "\x1b[15~")
	assert.Equal(t, api.KeyF, ev.Keyboard.Type)
	assert.Equal(t, uint8(5), ev.Keyboard.Num)
}

func TestParseEvent_SGRMouse_Press(t *testing.T) {
	// spec.md §8 scenario 2: 1-based wire coordinates (10,20) convert to
	// 0-based (9,19).
	ev := parse(t, "\x1b[<0;10;20M")
	assert.Equal(t, api.EventMouse, ev.Kind)
	assert.Equal(t, api.MousePress, ev.Mouse.Type)
	assert.Equal(t, api.MouseLeft, ev.Mouse.Button)
	assert.Equal(t, 9, ev.Mouse.Col)
	assert.Equal(t, 19, ev.Mouse.Row)
}

func TestParseEvent_SGRMouse_Release(t *testing.T) {
	ev := parse(t, "\x1b[<0;10;20m")
	assert.Equal(t, api.MouseRelease, ev.Mouse.Type)
}

func TestParseEvent_X10Mouse(t *testing.T) {
	// Left press at col=4 (37-32-1), row=5 (38-32-1), per spec.md §4.4.1.
	ev := parse(t, "\x1b[M"+string([]byte{32, 37, 38}))
	assert.Equal(t, api.MousePress, ev.Mouse.Type)
	assert.Equal(t, api.MouseLeft, ev.Mouse.Button)
	assert.Equal(t, 4, ev.Mouse.Col)
	assert.Equal(t, 5, ev.Mouse.Row)
}

func TestParseEvent_CursorPositionReport(t *testing.T) {
	ev := parse(t, "\x1b[24;80R")
	assert.Equal(t, api.KeyPos, ev.Keyboard.Type)
	assert.Equal(t, 79, ev.Keyboard.Col)
	assert.Equal(t, 23, ev.Keyboard.Row)
}

func TestParseEvent_Alt(t *testing.T) {
	ev := parse(t, "\x1bx")
	assert.Equal(t, api.KeyAlt, ev.Keyboard.Type)
	assert.Equal(t, 'x', ev.Keyboard.Rune)
}

func TestParseEvent_UTF8Multibyte(t *testing.T) {
	ev := parse(t, "é")
	assert.Equal(t, api.KeyChar, ev.Keyboard.Type)
	assert.Equal(t, 'é', ev.Keyboard.Rune)
}

func TestParseEvent_BareEscape(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader(nil))
	ev, err := ParseEvent(0x1B, r)
	require.NoError(t, err)
	assert.Equal(t, api.KeyEsc, ev.Keyboard.Type)
}
