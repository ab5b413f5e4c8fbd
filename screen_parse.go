package vterm

import (
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/climbch/vterm/api"
)

// gotoCutoff is the byte threshold beyond which patch prefers emitting a
// Goto escape sequence over replaying every unchanged character it already
// staged. 8 is the length of a typical "\x1B[00;00H" sequence; below that
// threshold, re-emitting the unchanged run is cheaper than jumping to it.
const gotoCutoff = 8

// Parse feeds s through the back-buffer, staging into strbuf only the
// characters and escape sequences needed to reproduce s's effect on the
// grid starting at the current cursor position. Call Flush to drain the
// staged output, or use a Screen to drive it straight to a Backend.
func (b *Buffer) Parse(s string) {
	index := b.cursor()
	cutoff := 0
	freeze := index

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()

		switch cluster {
		case "\t":
			col, row := b.coord(index)
			tabbed := b.tabstop(col, row)
			if offset := tabbed - index; offset > 0 {
				fmt.Fprintf(&b.strbuf, "\x1B[%dC", offset)
				cutoff = 0
				index = tabbed
				freeze = index
			}
			continue
		case "\n":
			col, row := b.coord(index)
			b.strbuf.WriteString("\x1B[B")
			cutoff = 0
			if b.height > row+1 {
				index = b.cellIndex(col, row+1)
			} else {
				index = b.cellIndex(col, b.height-1)
			}
			freeze = index
			continue
		case "\r\n":
			_, row := b.coord(index)
			b.strbuf.WriteString("\r\x1B[B")
			cutoff = 0
			if b.height > row+1 {
				index = b.cellIndex(0, row+1)
			} else {
				index = b.cellIndex(0, b.height-1)
			}
			freeze = index
			continue
		case "\r":
			col, row := b.coord(index)
			fmt.Fprintf(&b.strbuf, "\x1B[%dD", col)
			cutoff = 0
			index = b.cellIndex(0, row)
			freeze = index
			continue
		case "\x1B":
			cutoff += len(cluster)
			b.strbuf.WriteByte('^')
			if b.patch(cell{kind: cellSingle, glyph: "^", style: b.style}, index, cutoff) {
				cutoff = 0
				freeze = index + 1
			}
			index++
			continue
		}

		w := runewidth.StringWidth(cluster)
		runes := utf8.RuneCountInString(cluster)

		switch {
		case w == 0:
			continue
		case w == 1 && runes == 1:
			// A narrow glyph overwriting the origin of a wide cell consumes
			// both columns: its trailing Link half is orphaned and blanked
			// by patch, so the cursor must skip past it too.
			adv := 1
			if index >= 0 && index < len(b.cells) {
				switch b.cells[index].kind {
				case cellDouble, cellMulti:
					adv = 2
				}
			}
			cutoff += len(cluster)
			b.strbuf.WriteString(cluster)
			c := cell{kind: cellSingle, glyph: cluster, style: b.style}
			if cluster == " " {
				c = cell{kind: cellNIL}
			}
			reset := b.patch(c, index, cutoff)
			index += adv
			if reset {
				cutoff = 0
				freeze = index
			}
		case w == 2 && runes == 1:
			cutoff += len(cluster)
			b.strbuf.WriteString(cluster)
			reset := b.patch(cell{kind: cellDouble, glyph: cluster, style: b.style}, index, cutoff)
			b.patch(cell{kind: cellLink}, index+1, 0)
			index += 2
			if reset {
				cutoff = 0
				freeze = index
			}
		default:
			// A multi-rune grapheme cluster: an emoji modifier sequence or
			// a ZWJ join. written is what actually lands in strbuf, gated
			// by canModify (see Buffer.SetCanModify).
			written := cluster
			if !b.canModify {
				r, _ := utf8.DecodeRuneInString(cluster)
				written = string(r)
			}
			cutoff += len(written)
			b.strbuf.WriteString(written)
			reset := b.patch(cell{kind: cellMulti, glyph: written, style: b.style}, index, cutoff)
			b.patch(cell{kind: cellLink}, index+1, 0)
			index += 2
			if reset {
				cutoff = 0
				freeze = index
			}
		}
	}

	if cutoff > 0 {
		out := b.strbuf.String()
		if len(out) >= cutoff {
			b.strbuf.Reset()
			b.strbuf.WriteString(out[:len(out)-cutoff])
		}
		index = freeze
	}

	b.index = index
	b.cursor()
}

// patch writes cell into the grid at index if it differs from what's
// already there, staging the minimal output needed into strbuf. It reports
// whether the change reset the caller's cutoff counter (true whenever a
// cell actually changed).
func (b *Buffer) patch(c cell, index, cutoff int) bool {
	if index < 0 || index >= len(b.cells) {
		return false
	}

	that := b.cells[index]
	if c == that {
		return false
	}

	if cutoff > gotoCutoff {
		out := b.strbuf.String()
		length := len(out)

		if c.kind == cellMulti {
			tail := c.glyph
			if cut := len(tail); length >= cut {
				b.strbuf.Reset()
				b.strbuf.WriteString(out[:length-cut])
			}
		} else {
			if length >= cutoff {
				b.strbuf.Reset()
				b.strbuf.WriteString(out[:length-cutoff])
			}
			col, row := b.coord(index)
			fmt.Fprintf(&b.strbuf, "\x1B[%d;%dH", row+1, col+1)
		}

		switch c.kind {
		case cellSingle, cellDouble, cellMulti:
			b.strbuf.WriteString(c.glyph)
		case cellNIL:
			b.strbuf.WriteByte(' ')
		case cellLink:
		}
	}

	switch that.kind {
	case cellNIL, cellSingle:
	case cellLink:
		if index > 0 {
			b.cells[index-1] = cell{kind: cellNIL}
		}
	default:
		if index+1 < len(b.cells) {
			b.cells[index+1] = cell{kind: cellNIL}
		}
	}
	b.cells[index] = c

	return true
}

// Flush drains and returns the bytes Parse has staged so far.
func (b *Buffer) Flush() string {
	out := b.strbuf.String()
	b.strbuf.Reset()
	return out
}

// Screen pairs a Buffer with a live Backend: writes land in the grid first,
// and Render replays only what changed against the real terminal, ending
// with the cursor placed where the grid says it should be.
type Screen struct {
	backend api.Backend
	buf     *Buffer
}

// NewScreen builds a Screen sized to backend's current terminal dimensions.
func NewScreen(backend api.Backend) (*Screen, error) {
	w, h, err := backend.Size()
	if err != nil {
		return nil, err
	}
	return &Screen{backend: backend, buf: NewBuffer(w, h)}, nil
}

// Buffer exposes the underlying back-buffer for direct navigation/clear
// calls that don't need to reach the backend (e.g. GotoCoord, Getch).
func (s *Screen) Buffer() *Buffer { return s.buf }

// Write stages content into the back-buffer without touching the terminal.
// Call Render to replay the accumulated diff.
func (s *Screen) Write(content string) {
	s.buf.Parse(content)
}

// Resize grows or shrinks the back-buffer to match the backend's current
// dimensions, then asks the backend to resize to match.
func (s *Screen) Resize(w, h int) error {
	s.buf.Resize(w, h)
	return s.backend.Resize(w, h)
}

// Render flushes the back-buffer's staged output to the backend and parks
// the real cursor at the grid's current cursor position.
func (s *Screen) Render() error {
	out := s.buf.Flush()
	if out != "" {
		if err := s.backend.Prints(out); err != nil {
			return err
		}
	}
	col, row := s.buf.Coord()
	if err := s.backend.Goto(col, row); err != nil {
		return err
	}
	return s.backend.Flush()
}
