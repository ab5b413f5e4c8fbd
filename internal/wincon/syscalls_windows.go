//go:build windows

// Package wincon implements the Win32 Console API Backend used on legacy
// (non-VT) Windows consoles.
package wincon

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procGetConsoleCursorInfo       = kernel32.NewProc("GetConsoleCursorInfo")
	procSetConsoleCursorInfo       = kernel32.NewProc("SetConsoleCursorInfo")
	procFillConsoleOutputCharacter = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute = kernel32.NewProc("FillConsoleOutputAttribute")
	procSetConsoleTextAttribute    = kernel32.NewProc("SetConsoleTextAttribute")
	procSetConsoleScreenBufferSize = kernel32.NewProc("SetConsoleScreenBufferSize")
	procCreateConsoleScreenBuffer  = kernel32.NewProc("CreateConsoleScreenBuffer")
	procSetConsoleActiveScreenBuf  = kernel32.NewProc("SetConsoleActiveScreenBuffer")
	procSetConsoleWindowInfo       = kernel32.NewProc("SetConsoleWindowInfo")
	procGetLargestConsoleWindow    = kernel32.NewProc("GetLargestConsoleWindowSize")
	procReadConsoleInputW          = kernel32.NewProc("ReadConsoleInputW")
)

// ConsoleCursorInfo mirrors the Win32 CONSOLE_CURSOR_INFO struct.
type ConsoleCursorInfo struct {
	Size    uint32
	Visible int32
}

// GetConsoleCursorInfo retrieves cursor size/visibility.
func GetConsoleCursorInfo(handle windows.Handle, info *ConsoleCursorInfo) error {
	r1, _, err := procGetConsoleCursorInfo.Call(uintptr(handle), uintptr(unsafe.Pointer(info)))
	if r1 == 0 {
		return err
	}
	return nil
}

// SetConsoleCursorInfo sets cursor size/visibility.
func SetConsoleCursorInfo(handle windows.Handle, info *ConsoleCursorInfo) error {
	r1, _, err := procSetConsoleCursorInfo.Call(uintptr(handle), uintptr(unsafe.Pointer(info)))
	if r1 == 0 {
		return err
	}
	return nil
}

// FillConsoleOutputCharacter writes length copies of char starting at coord.
func FillConsoleOutputCharacter(handle windows.Handle, char rune, length uint32, coord windows.Coord, written *uint32) error {
	r1, _, err := procFillConsoleOutputCharacter.Call(
		uintptr(handle),
		uintptr(char),
		uintptr(length),
		uintptr(*(*uint32)(unsafe.Pointer(&coord))),
		uintptr(unsafe.Pointer(written)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

// FillConsoleOutputAttribute writes length copies of attr starting at coord.
func FillConsoleOutputAttribute(handle windows.Handle, attr uint16, length uint32, coord windows.Coord, written *uint32) error {
	r1, _, err := procFillConsoleOutputAttribute.Call(
		uintptr(handle),
		uintptr(attr),
		uintptr(length),
		uintptr(*(*uint32)(unsafe.Pointer(&coord))),
		uintptr(unsafe.Pointer(written)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

// SetConsoleTextAttribute sets the attribute word future writes will use.
func SetConsoleTextAttribute(handle windows.Handle, attr uint16) error {
	r1, _, err := procSetConsoleTextAttribute.Call(uintptr(handle), uintptr(attr))
	if r1 == 0 {
		return err
	}
	return nil
}

// SetConsoleScreenBufferSize resizes the backing buffer (must be done before
// SetConsoleWindowInfo can grow the visible window past the old size).
func SetConsoleScreenBufferSize(handle windows.Handle, size windows.Coord) error {
	r1, _, err := procSetConsoleScreenBufferSize.Call(
		uintptr(handle),
		uintptr(*(*uint32)(unsafe.Pointer(&size))),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

// CreateConsoleScreenBuffer allocates a new screen buffer, used for the
// alternate-screen action since Win32 has no ANSI-style "alt screen" concept.
func CreateConsoleScreenBuffer() (windows.Handle, error) {
	r1, _, err := procCreateConsoleScreenBuffer.Call(
		uintptr(windows.GENERIC_READ|windows.GENERIC_WRITE),
		uintptr(windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE),
		0,
		uintptr(1), // CONSOLE_TEXTMODE_BUFFER
		0,
	)
	if windows.Handle(r1) == windows.InvalidHandle {
		return 0, err
	}
	return windows.Handle(r1), nil
}

// SetConsoleActiveScreenBuffer switches which buffer is displayed.
func SetConsoleActiveScreenBuffer(handle windows.Handle) error {
	r1, _, err := procSetConsoleActiveScreenBuf.Call(uintptr(handle))
	if r1 == 0 {
		return err
	}
	return nil
}

// SmallRect mirrors the Win32 SMALL_RECT struct.
type SmallRect struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

// SetConsoleWindowInfo resizes the visible window, absolute or relative to
// its current bounds depending on absolute.
func SetConsoleWindowInfo(handle windows.Handle, absolute bool, rect *SmallRect) error {
	var a uintptr
	if absolute {
		a = 1
	}
	r1, _, err := procSetConsoleWindowInfo.Call(uintptr(handle), a, uintptr(unsafe.Pointer(rect)))
	if r1 == 0 {
		return err
	}
	return nil
}

// GetLargestConsoleWindowSize reports the largest window the current font
// and display allow, used to clamp Resize requests.
func GetLargestConsoleWindowSize(handle windows.Handle) windows.Coord {
	r1, _, _ := procGetLargestConsoleWindow.Call(uintptr(handle))
	return *(*windows.Coord)(unsafe.Pointer(&r1))
}

// KeyEventRecord mirrors the Win32 KEY_EVENT_RECORD.
type KeyEventRecord struct {
	KeyDown         int32
	RepeatCount     uint16
	VirtualKeyCode  uint16
	VirtualScanCode uint16
	UnicodeChar     uint16
	ControlKeyState uint32
}

// MouseEventRecord mirrors the Win32 MOUSE_EVENT_RECORD.
type MouseEventRecord struct {
	MousePosition   windows.Coord
	ButtonState     uint32
	ControlKeyState uint32
	EventFlags      uint32
}

// WindowBufferSizeRecord mirrors the Win32 WINDOW_BUFFER_SIZE_RECORD.
type WindowBufferSizeRecord struct {
	Size windows.Coord
}

// InputRecord mirrors the Win32 INPUT_RECORD tagged union. Only the event
// types the parser cares about (key, mouse, resize) are decoded; the raw
// bytes for other event types are kept in Raw for forward compatibility.
type InputRecord struct {
	EventType uint16
	_         uint16 // alignment padding
	Raw       [16]byte
}

// Event type codes for InputRecord.EventType.
const (
	KeyEvent              = 0x0001
	MouseEvent            = 0x0002
	WindowBufferSizeEvent = 0x0004
)

// AsKeyEvent reinterprets Raw as a KeyEventRecord.
func (r *InputRecord) AsKeyEvent() *KeyEventRecord {
	return (*KeyEventRecord)(unsafe.Pointer(&r.Raw[0]))
}

// AsMouseEvent reinterprets Raw as a MouseEventRecord.
func (r *InputRecord) AsMouseEvent() *MouseEventRecord {
	return (*MouseEventRecord)(unsafe.Pointer(&r.Raw[0]))
}

// AsWindowBufferSizeEvent reinterprets Raw as a WindowBufferSizeRecord.
func (r *InputRecord) AsWindowBufferSizeEvent() *WindowBufferSizeRecord {
	return (*WindowBufferSizeRecord)(unsafe.Pointer(&r.Raw[0]))
}

// ReadConsoleInput blocks until at least one input record is available and
// fills buf with as many as are ready.
func ReadConsoleInput(handle windows.Handle, buf []InputRecord) (int, error) {
	var n uint32
	r1, _, err := procReadConsoleInputW.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&n)),
	)
	if r1 == 0 {
		return 0, err
	}
	return int(n), nil
}
