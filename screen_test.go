package vterm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/climbch/vterm/api"
)

func TestBuffer_AsciiOverwrite(t *testing.T) {
	buf := NewBuffer(80, 24)
	buf.Parse("Hello, world!")
	buf.Flush()

	buf.GotoCoord(0, 0)
	buf.Parse("Bella, whale!")
	output := buf.Flush()
	assert.Equal(t, "Bella, whale", output, "the unchanged trailing '!' is trimmed from the staged output")
	assert.Equal(t, 12, buf.cursor())
	assert.Equal(t, "!", buf.Getch())

	buf.GotoCoord(5, 0)
	assert.Equal(t, ",", buf.Getch())

	buf.GotoCoord(0, 0)
	buf.Parse("Hella, wharf!")
	output = buf.Flush()
	assert.Equal(t, "H\x1B[1;11Hrf", output, "a long run of unchanged cells collapses into a Goto escape")
}

func TestBuffer_WideCharOverwrite(t *testing.T) {
	buf := NewBuffer(5, 2)
	buf.Parse("a㓘z")
	buf.Flush()

	buf.GotoCoord(1, 0)
	assert.Equal(t, "㓘", buf.Getch())

	buf.GotoCoord(0, 0)
	buf.Parse("a$z")
	buf.Flush()

	buf.GotoCoord(1, 0)
	assert.Equal(t, "$", buf.Getch())
	buf.GotoCoord(2, 0)
	assert.Equal(t, " ", buf.Getch(), "overwriting a wide cell with a narrow one blanks its trailing half")
}

func TestBuffer_TabAdvancesToNextStop(t *testing.T) {
	buf := NewBuffer(15, 1)
	buf.SetTabWidth(4)
	buf.Parse("a\tx")
	output := buf.Flush()
	assert.Equal(t, "a\x1B[3Cx", output)

	buf.GotoCoord(0, 0)
	assert.Equal(t, "a", buf.Getch())
	buf.GotoCoord(4, 0)
	assert.Equal(t, "x", buf.Getch())
}

func TestBuffer_BareLFPreservesColumn(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.GotoCoord(3, 0)
	buf.Parse("\nX")
	output := buf.Flush()
	assert.Equal(t, "\x1B[BX", output, "\\n advances the row but keeps the Unix column convention")

	buf.GotoCoord(3, 1)
	assert.Equal(t, "X", buf.Getch())
}

func TestBuffer_CRLFResetsColumn(t *testing.T) {
	buf := NewBuffer(5, 3)
	buf.GotoCoord(3, 0)
	buf.Parse("\r\nX")
	output := buf.Flush()
	assert.Equal(t, "\r\x1B[BX", output, "\\r\\n moves to column 0 of the next row")

	buf.GotoCoord(0, 1)
	assert.Equal(t, "X", buf.Getch())
}

func TestBuffer_ClearCurrentLine(t *testing.T) {
	buf := NewBuffer(5, 2)
	buf.Parse("-----" + "-----")
	buf.Flush()

	buf.GotoCoord(2, 1)
	buf.Clear(api.ClearCurrentLine)

	col, row := buf.Coord()
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, row)
	assert.Equal(t, " ", buf.Getch())

	buf.GotoCoord(0, 0)
	assert.Equal(t, "-", buf.Getch(), "ClearCurrentLine only blanks the row the cursor was on")
}

func TestBuffer_ClearAll(t *testing.T) {
	buf := NewBuffer(5, 2)
	buf.Parse("abcdefghij")
	buf.Flush()
	buf.Clear(api.ClearAll)

	buf.GotoCoord(0, 0)
	assert.Equal(t, " ", buf.Getch())
	col, row := buf.Coord()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestBuffer_MarkAndGotoMark(t *testing.T) {
	buf := NewBuffer(5, 2)
	buf.GotoCoord(2, 0)
	buf.Mark()
	buf.GotoCoord(0, 1)
	buf.GotoMark()

	col, row := buf.Coord()
	assert.Equal(t, 2, col)
	assert.Equal(t, 0, row)
}

func TestScreen_RenderFlushesAndPositionsCursor(t *testing.T) {
	backend := &mockBackend{}
	screen, err := NewScreen(backend)
	assert := assert.New(t)
	assert.NoError(err)

	screen.Write("hi")
	assert.NoError(screen.Render())
	assert.Equal(1, backend.callCount("Prints"))
	assert.Equal(1, backend.callCount("Goto"))
	assert.Equal(1, backend.callCount("Flush"))
}
