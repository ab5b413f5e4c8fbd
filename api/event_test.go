package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEvent_String(t *testing.T) {
	assert.Equal(t, `Char('a')`, Char('a').String())
	assert.Equal(t, `Ctrl('c')`, Ctrl('c').String())
	assert.Equal(t, "F(5)", F(5).String())
	assert.Equal(t, "Pos(3,4)", Pos(3, 4).String())
	assert.Equal(t, "Backspace", KeyEvent{Type: KeyBackspace}.String())
}

func TestInputEvent_Constructors(t *testing.T) {
	kb := Keyboard(Char('x'))
	assert.Equal(t, EventKeyboard, kb.Kind)
	assert.Equal(t, 'x', kb.Keyboard.Rune)

	m := MouseInput(Press(MouseLeft, 2, 3))
	assert.Equal(t, EventMouse, m.Kind)
	assert.Equal(t, MousePress, m.Mouse.Type)
	assert.Equal(t, 2, m.Mouse.Col)
	assert.Equal(t, 3, m.Mouse.Row)

	assert.Equal(t, EventUnknown, Unknown.Kind)
}

func TestMouseEvent_Constructors(t *testing.T) {
	press := Press(MouseWheelUp, 0, 0)
	assert.Equal(t, MousePress, press.Type)
	assert.Equal(t, MouseWheelUp, press.Button)

	release := Release(5, 6)
	assert.Equal(t, MouseRelease, release.Type)

	hold := Hold(7, 8)
	assert.Equal(t, MouseHold, hold.Type)
}
