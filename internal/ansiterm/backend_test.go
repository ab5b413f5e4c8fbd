package ansiterm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/climbch/vterm/api"
)

func newTestTerminal() (*Terminal, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithOutput(&buf, api.PlatformUnix, -1), &buf
}

func TestTerminal_Goto(t *testing.T) {
	term, buf := newTestTerminal()
	require.NoError(t, term.Goto(10, 5))
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[6;11H", buf.String())
}

func TestTerminal_CursorVisibility(t *testing.T) {
	term, buf := newTestTerminal()
	require.NoError(t, term.HideCursor())
	require.NoError(t, term.ShowCursor())
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[?25l\x1b[?25h", buf.String())
}

func TestTerminal_Clear(t *testing.T) {
	term, buf := newTestTerminal()
	require.NoError(t, term.Clear(api.ClearAll))
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[2J", buf.String())
}

func TestTerminal_SetFg_Reset(t *testing.T) {
	term, buf := newTestTerminal()
	require.NoError(t, term.SetFg(api.Reset))
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[39m", buf.String())
}

func TestTerminal_SetFg_Named(t *testing.T) {
	term, buf := newTestTerminal()
	require.NoError(t, term.SetFg(api.DarkRed))
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[38;5;1m", buf.String())
}

func TestTerminal_SetFx_SingleBit(t *testing.T) {
	term, buf := newTestTerminal()
	require.NoError(t, term.SetFx(api.EffectBold))
	require.NoError(t, term.Flush())
	assert.Equal(t, "\x1b[1m", buf.String())
}

func TestTerminal_Size_NoDescriptor(t *testing.T) {
	term, _ := newTestTerminal()
	_, _, err := term.Size()
	assert.Error(t, err, "a -1 descriptor can't be queried for size")
}

func TestTerminal_Platform(t *testing.T) {
	term, _ := newTestTerminal()
	assert.Equal(t, api.PlatformUnix, term.Platform())
}
