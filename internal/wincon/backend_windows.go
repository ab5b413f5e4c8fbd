//go:build windows

package wincon

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"

	"github.com/climbch/vterm/api"
)

// attr is the console attribute word: low nibble foreground (bit 3 is
// FOREGROUND_INTENSITY), next nibble background (bit 7 is
// BACKGROUND_INTENSITY), and bits 8-15 carry the DBCS, grid-line, reverse
// and underscore flags; of those, this backend sets only reverse and
// underscore.
type attr = uint16

const (
	attrFgIntensity = 0x0008
	attrBgIntensity = 0x0080
	attrReverse     = windows.COMMON_LVB_REVERSE_VIDEO
	attrUnderscore  = windows.COMMON_LVB_UNDERSCORE

	// Per-cell decoration bits CHAR_INFO.Attributes can carry that have no
	// business surviving a Clear: DBCS leading/trailing markers and the
	// line-drawing grid flags. Masked off before filling cleared cells so
	// they don't inherit artifacts from whatever used to occupy that cell.
	attrLeadingByte  = 0x0100
	attrTrailingByte = 0x0200
	attrGridHoriz    = 0x0400
	attrGridLVert    = 0x0800
	attrGridRVert    = 0x1000
	attrDecorationMask = attrLeadingByte | attrTrailingByte | attrGridHoriz | attrGridLVert | attrGridRVert | attrReverse | attrUnderscore
)

// sanitizeClearAttr strips the per-cell decoration bits from the current
// attribute word before it's used to fill cleared cells, per spec.md §4.2.
func sanitizeClearAttr(a attr) attr {
	return a &^ attrDecorationMask
}

// Terminal implements api.Backend with the legacy Win32 Console API. It is
// selected when the console does not advertise VT processing support; see
// the root package's Detect.
type Terminal struct {
	stdout windows.Handle
	stdin  windows.Handle
	altBuf windows.Handle // set while the alternate screen is active
	cur    attr           // current SGR-equivalent attribute word
	saved  struct {
		col, row int
		active   bool
	}
}

// New opens a Win32 console Terminal bound to the process's stdout/stdin.
// It returns an error if the handles are not backed by a real console
// (pipes, MinTTY, redirected output) so the caller can fall back to ANSI.
func New() (*Terminal, error) {
	stdout := windows.Handle(os.Stdout.Fd())
	stdin := windows.Handle(os.Stdin.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(stdout, &info); err != nil {
		return nil, fmt.Errorf("wincon: not a Windows console: %w", err)
	}

	return &Terminal{stdout: stdout, stdin: stdin, cur: info.Attributes}, nil
}

func (t *Terminal) Platform() api.Platform { return api.PlatformWindowsConsole }

func (t *Terminal) info() (windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	err := windows.GetConsoleScreenBufferInfo(t.activeHandle(), &info)
	return info, err
}

func (t *Terminal) activeHandle() windows.Handle {
	if t.altBuf != 0 {
		return t.altBuf
	}
	return t.stdout
}

func (t *Terminal) Goto(col, row int) error {
	return windows.SetConsoleCursorPosition(t.activeHandle(), windows.Coord{X: int16(col), Y: int16(row)})
}

func (t *Terminal) Up(n int) error    { return t.moveRel(0, -n) }
func (t *Terminal) Down(n int) error  { return t.moveRel(0, n) }
func (t *Terminal) Left(n int) error  { return t.moveRel(-n, 0) }
func (t *Terminal) Right(n int) error { return t.moveRel(n, 0) }

func (t *Terminal) moveRel(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	info, err := t.info()
	if err != nil {
		return err
	}
	col := clamp(int(info.CursorPosition.X)+dx, 0, int(info.Size.X)-1)
	row := clamp(int(info.CursorPosition.Y)+dy, 0, int(info.Size.Y)-1)
	return t.Goto(col, row)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Terminal) HideCursor() error { return t.setCursorVisible(false) }
func (t *Terminal) ShowCursor() error { return t.setCursorVisible(true) }

func (t *Terminal) setCursorVisible(visible bool) error {
	var info ConsoleCursorInfo
	if err := GetConsoleCursorInfo(t.activeHandle(), &info); err != nil {
		return err
	}
	if visible {
		info.Visible = 1
	} else {
		info.Visible = 0
	}
	return SetConsoleCursorInfo(t.activeHandle(), &info)
}

// SaveCursor and RestoreCursor are software-emulated: the legacy console API
// has no hardware save/restore stack, so the teacher's Console type keeps the
// position in package state. This backend keeps it per-Terminal instead.
func (t *Terminal) SaveCursor() error {
	info, err := t.info()
	if err != nil {
		return err
	}
	t.saved.col = int(info.CursorPosition.X)
	t.saved.row = int(info.CursorPosition.Y)
	t.saved.active = true
	return nil
}

func (t *Terminal) RestoreCursor() error {
	if !t.saved.active {
		return fmt.Errorf("wincon: RestoreCursor with no prior SaveCursor")
	}
	return t.Goto(t.saved.col, t.saved.row)
}

func (t *Terminal) Clear(c api.Clear) error {
	info, err := t.info()
	if err != nil {
		return err
	}
	width := int(info.Size.X)
	height := int(info.Size.Y)
	col := int(info.CursorPosition.X)
	row := int(info.CursorPosition.Y)

	var start windows.Coord
	var n uint32
	switch c {
	case api.ClearAll:
		start = windows.Coord{X: 0, Y: 0}
		n = uint32(width * height)
	case api.ClearCursorDown:
		start = windows.Coord{X: int16(col), Y: int16(row)}
		n = uint32((width - col) + width*(height-row))
	case api.ClearCursorUp:
		start = windows.Coord{X: 0, Y: 0}
		n = uint32(width*row + col + 1)
	case api.ClearCurrentLine:
		start = windows.Coord{X: 0, Y: int16(row)}
		n = uint32(width)
	case api.ClearNewLine:
		start = windows.Coord{X: int16(col), Y: int16(row)}
		n = uint32(width - col)
	default:
		return fmt.Errorf("wincon: unknown clear mode %v", c)
	}

	var written uint32
	if err := FillConsoleOutputCharacter(t.activeHandle(), ' ', n, start, &written); err != nil {
		return err
	}
	if err := FillConsoleOutputAttribute(t.activeHandle(), sanitizeClearAttr(t.cur), n, start, &written); err != nil {
		return err
	}
	if c == api.ClearAll {
		return t.Goto(0, 0)
	}
	if c == api.ClearCurrentLine {
		return t.Goto(0, row)
	}
	return nil
}

func (t *Terminal) Size() (w, h int, err error) {
	info, err := t.info()
	if err != nil {
		return 0, 0, err
	}
	return int(info.Size.X), int(info.Size.Y), nil
}

// Resize sets the visible window and the screen buffer to w x h. The Win32
// API rejects a window rect larger than the current buffer, so when either
// dimension grows the buffer is first enlarged to cover both the old and the
// new size, then the window is set, then the buffer is shrunk to the new
// size. See GetLargestConsoleWindowSize for the upper bound this clamps to.
func (t *Terminal) Resize(w, h int) error {
	handle := t.activeHandle()
	largest := GetLargestConsoleWindowSize(handle)
	w = clamp(w, 1, int(largest.X))
	h = clamp(h, 1, int(largest.Y))

	info, err := t.info()
	if err != nil {
		return err
	}
	curW, curH := int(info.Size.X), int(info.Size.Y)

	growing := w > curW || h > curH
	newSize := windows.Coord{X: int16(w), Y: int16(h)}
	newWindow := &SmallRect{Left: 0, Top: 0, Right: int16(w - 1), Bottom: int16(h - 1)}

	if growing {
		enlarged := windows.Coord{X: int16(max(w, curW)), Y: int16(max(h, curH))}
		if err := SetConsoleScreenBufferSize(handle, enlarged); err != nil {
			return err
		}
	}
	if err := SetConsoleWindowInfo(handle, true, newWindow); err != nil {
		return err
	}
	return SetConsoleScreenBufferSize(handle, newSize)
}

// EnableAlt allocates a fresh screen buffer and switches to it, the Win32
// analogue of the ANSI backend's "?1049h" alternate-screen toggle.
func (t *Terminal) EnableAlt() error {
	if t.altBuf != 0 {
		return nil
	}
	h, err := CreateConsoleScreenBuffer()
	if err != nil {
		return err
	}
	if err := SetConsoleActiveScreenBuffer(h); err != nil {
		return err
	}
	t.altBuf = h
	return nil
}

func (t *Terminal) DisableAlt() error {
	if t.altBuf == 0 {
		return nil
	}
	if err := SetConsoleActiveScreenBuffer(t.stdout); err != nil {
		return err
	}
	_ = windows.CloseHandle(t.altBuf)
	t.altBuf = 0
	return nil
}

func (t *Terminal) Prints(s string) error {
	_, err := fmt.Fprint(os.Stdout, s)
	return err
}

// Flush is a no-op: every write above goes directly through a Win32 console
// handle, which has no user-space buffer to drain.
func (t *Terminal) Flush() error { return nil }

func (t *Terminal) EnableMouse() error {
	var mode uint32
	if err := windows.GetConsoleMode(t.stdin, &mode); err != nil {
		return err
	}
	mode |= windows.ENABLE_MOUSE_INPUT
	mode &^= windows.ENABLE_QUICK_EDIT_MODE
	return windows.SetConsoleMode(t.stdin, mode)
}

func (t *Terminal) DisableMouse() error {
	var mode uint32
	if err := windows.GetConsoleMode(t.stdin, &mode); err != nil {
		return err
	}
	mode &^= windows.ENABLE_MOUSE_INPUT
	mode |= windows.ENABLE_QUICK_EDIT_MODE
	return windows.SetConsoleMode(t.stdin, mode)
}

// colorNibble maps a Color to the 4-bit RGBI nibble Win32 consoles use. Any
// kind not listed maps to white; SetFg and SetBg never pass RGB or
// 256-index colors here, since they skip those before calling it.
func colorNibble(c api.Color) (nibble uint16, intense bool) {
	switch c.Kind {
	case api.ColorBlack:
		return 0, false
	case api.ColorDarkBlue:
		return 0x1, false
	case api.ColorDarkGreen:
		return 0x2, false
	case api.ColorDarkCyan:
		return 0x3, false
	case api.ColorDarkRed:
		return 0x4, false
	case api.ColorDarkMagenta:
		return 0x5, false
	case api.ColorDarkYellow:
		return 0x6, false
	case api.ColorGrey:
		return 0x7, false
	case api.ColorDarkGrey:
		return 0, true
	case api.ColorBlue:
		return 0x1, true
	case api.ColorGreen:
		return 0x2, true
	case api.ColorCyan:
		return 0x3, true
	case api.ColorRed:
		return 0x4, true
	case api.ColorMagenta:
		return 0x5, true
	case api.ColorYellow:
		return 0x6, true
	case api.ColorWhite:
		return 0x7, true
	default:
		return 0x7, true
	}
}

// unsupportedNibble reports whether c is a color this backend has no native
// attribute-word equivalent for. Per spec.md §4.2 these degrade silently:
// the nibble they would have touched is left unchanged rather than erroring
// or falling back to a default color.
func unsupportedNibble(c api.Color) bool {
	return c.Kind == api.ColorRGB || c.Kind == api.ColorAnsiValue
}

func (t *Terminal) SetFg(c api.Color) error {
	if unsupportedNibble(c) {
		return nil
	}
	if c.Kind == api.ColorReset {
		t.cur = (t.cur &^ 0x000F) | 0x7
		return SetConsoleTextAttribute(t.activeHandle(), t.cur)
	}
	nibble, intense := colorNibble(c)
	t.cur = t.cur &^ (0x000F | attrFgIntensity)
	t.cur |= nibble
	if intense {
		t.cur |= attrFgIntensity
	}
	return SetConsoleTextAttribute(t.activeHandle(), t.cur)
}

func (t *Terminal) SetBg(c api.Color) error {
	if unsupportedNibble(c) {
		return nil
	}
	if c.Kind == api.ColorReset {
		t.cur = t.cur &^ (0x00F0 | attrBgIntensity)
		return SetConsoleTextAttribute(t.activeHandle(), t.cur)
	}
	nibble, intense := colorNibble(c)
	t.cur = t.cur &^ (0x00F0 | attrBgIntensity)
	t.cur |= nibble << 4
	if intense {
		t.cur |= attrBgIntensity
	}
	return SetConsoleTextAttribute(t.activeHandle(), t.cur)
}

// SetFx maps the portable effect bitmask onto the attribute word: Reverse
// and Underline set the reverse-video and underscore flags, and Hide is
// approximated by copying the background nibble into the foreground nibble.
// Bold and Dim are accepted and leave the attribute word unchanged.
func (t *Terminal) SetFx(fx api.Effect) error {
	t.cur &^= attrReverse | attrUnderscore
	if fx.Has(api.EffectReverse) {
		t.cur |= attrReverse
	}
	if fx.Has(api.EffectUnderline) {
		t.cur |= attrUnderscore
	}
	if fx.Has(api.EffectHide) {
		// approximate hide by matching fg to bg
		t.cur = (t.cur &^ 0x000F) | ((t.cur & 0x00F0) >> 4)
	}
	return SetConsoleTextAttribute(t.activeHandle(), t.cur)
}

func (t *Terminal) SetStyles(fg, bg api.Color, fx api.Effect) error {
	if err := t.SetFg(fg); err != nil {
		return err
	}
	if err := t.SetBg(bg); err != nil {
		return err
	}
	return t.SetFx(fx)
}

func (t *Terminal) ResetStyles() error {
	t.cur = 0x07
	return SetConsoleTextAttribute(t.activeHandle(), t.cur)
}
