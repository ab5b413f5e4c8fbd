package vterm

import (
	"strings"

	"github.com/climbch/vterm/api"
)

// cellKind tags which variant of a back-buffer cell is populated, mirroring
// the tagged Action/KeyEvent structs elsewhere in this package.
type cellKind int

const (
	cellNIL cellKind = iota
	cellLink
	cellSingle
	cellDouble
	cellMulti
)

type cellStyle struct {
	fg, bg api.Color
	fx     api.Effect
}

// cell is one terminal-grid position. glyph holds the text written for the
// cell (for a multi-rune cluster with canModify off, only its base rune),
// so two cells compare equal with a plain ==: the whole
// struct is comparable, which is what patch relies on to detect changes.
type cell struct {
	kind  cellKind
	glyph string
	style cellStyle
}

// Buffer is a diffed back-buffer: a scratch grid plus an output staging
// string (strbuf) that Parse fills with only the escape sequences and
// characters needed to bring the real terminal in line with the grid.
type Buffer struct {
	index  int
	cells  []cell
	strbuf strings.Builder

	width, height int
	style         cellStyle
	savedPos      int
	tabWidth      int

	// canModify controls whether a multi-rune grapheme cluster (an
	// emoji modifier sequence, a ZWJ family glyph, ...) is written to
	// the terminal in full or truncated to its base rune. Most terminal
	// fonts render the full sequence inconsistently, so this defaults
	// to false; set it true once the host terminal is known to support
	// full cluster rendering.
	canModify bool
}

// NewBuffer allocates a back-buffer sized for a w x h terminal.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		cells:    make([]cell, w*h),
		width:    w,
		height:   h,
		tabWidth: 4,
	}
}

// Resize grows or shrinks the cell grid to the new dimensions, padding new
// cells as NIL (blank) and truncating any that no longer fit.
func (b *Buffer) Resize(w, h int) {
	b.width, b.height = w, h
	capacity := w * h
	if capacity <= len(b.cells) {
		b.cells = b.cells[:capacity]
		return
	}
	grown := make([]cell, capacity)
	copy(grown, b.cells)
	b.cells = grown
}

// Size returns the buffer's current dimensions.
func (b *Buffer) Size() (w, h int) { return b.width, b.height }

// SetTabWidth changes the tab stop interval used by Parse.
func (b *Buffer) SetTabWidth(n int) { b.tabWidth = n }

// SetCanModify toggles whether multi-rune grapheme clusters are written out
// in full (true) or truncated to their base rune (false, the default).
func (b *Buffer) SetCanModify(v bool) { b.canModify = v }

// SetStyle updates the style new content is stamped with.
func (b *Buffer) SetStyle(fg, bg api.Color, fx api.Effect) {
	b.style = cellStyle{fg: fg, bg: bg, fx: fx}
}

// coord converts a cell index into a (col, row) pair.
func (b *Buffer) coord(index int) (col, row int) {
	return index % b.width, index / b.width
}

// cellIndex converts a (col, row) pair into a cell index, folding negative
// inputs to their absolute value the way the original buffer does.
func (b *Buffer) cellIndex(col, row int) int {
	if col < 0 {
		col = -col
	}
	if row < 0 {
		row = -row
	}
	return row*b.width + col
}

// tabstop returns the index of the next tab stop strictly after (col, row),
// clamped to the last column of the row.
func (b *Buffer) tabstop(col, row int) int {
	prevStop := (col / b.tabWidth) * b.tabWidth
	nextStop := prevStop + b.tabWidth
	if width := b.width - 1; nextStop > width {
		nextStop = width
	}
	return row*b.width + nextStop
}

// cursor validates b.index against the current cell-grid capacity, repairing
// a stale index after a Resize and stepping back off the tail half of a
// wide-character Link cell, then returns the corrected index.
func (b *Buffer) cursor() int {
	capacity := b.width * b.height
	if len(b.cells) != capacity {
		switch {
		case len(b.cells) < capacity:
			grown := make([]cell, capacity)
			copy(grown, b.cells)
			b.cells = grown
		default:
			b.cells = b.cells[:capacity]
		}
	}
	if b.index >= capacity {
		b.index = capacity - 1
	}
	if b.index < 0 {
		b.index = 0
	}
	if b.cells[b.index].kind == cellLink {
		b.index--
	}
	return b.index
}

// GotoIndex moves the buffer's cursor to a raw cell index.
func (b *Buffer) GotoIndex(index int) int {
	b.index = index
	return b.cursor()
}

// GotoCoord moves the buffer's cursor to a (col, row) pair.
func (b *Buffer) GotoCoord(col, row int) int {
	b.index = b.cellIndex(col, row)
	return b.cursor()
}

// Coord returns the buffer's current cursor position.
func (b *Buffer) Coord() (col, row int) {
	return b.coord(b.cursor())
}

// Mark saves the current cursor position for a later GotoMark.
func (b *Buffer) Mark() {
	b.savedPos = b.cursor()
}

// GotoMark jumps to the position last saved by Mark, and saves the position
// it jumped from so a second GotoMark call swaps back.
func (b *Buffer) GotoMark() {
	index := b.cursor()
	b.GotoIndex(b.savedPos)
	b.savedPos = index
}

// Clear blanks part or all of the grid around the current cursor position.
func (b *Buffer) Clear(c api.Clear) {
	switch c {
	case api.ClearAll:
		b.cells = make([]cell, b.width*b.height)
		b.index = 0
	case api.ClearNewLine:
		col, row := b.coord(b.cursor())
		start, stop := row*b.width+col, (row+1)*b.width
		for i := start; i < stop && i < len(b.cells); i++ {
			b.cells[i] = cell{}
		}
	case api.ClearCurrentLine:
		_, row := b.coord(b.cursor())
		start, stop := row*b.width, (row+1)*b.width
		for i := start; i < stop && i < len(b.cells); i++ {
			b.cells[i] = cell{}
		}
		b.GotoCoord(0, row)
	case api.ClearCursorUp:
		stop := b.cursor()
		for i := 0; i < stop; i++ {
			b.cells[i] = cell{}
		}
	case api.ClearCursorDown:
		start := b.cursor()
		for i := start; i < len(b.cells); i++ {
			b.cells[i] = cell{}
		}
	}
}

// Getch returns the text of the cell under the cursor.
func (b *Buffer) Getch() string {
	switch c := b.cells[b.cursor()]; c.kind {
	case cellNIL:
		return " "
	case cellLink:
		return ""
	default:
		return c.glyph
	}
}
