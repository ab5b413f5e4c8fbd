//go:build windows

package wincon

import (
	"golang.org/x/sys/windows"

	"github.com/climbch/vterm/api"
)

// snapshot captures both the console input mode (line buffering, echo) and
// the output attribute word, so Cook can restore exactly what Raw found.
type snapshot struct {
	stdin    windows.Handle
	inMode   uint32
	attrHost *uint16
	attr     uint16
}

func (s *snapshot) Restore() error {
	if err := windows.SetConsoleMode(s.stdin, s.inMode); err != nil {
		return err
	}
	if s.attrHost != nil {
		*s.attrHost = s.attr
	}
	return nil
}

// Raw disables line input, echo, and processed input so callers receive raw
// key events through ReadConsoleInput instead of a line-buffered stream.
func (t *Terminal) Raw() (api.ModeSnapshot, error) {
	var mode uint32
	if err := windows.GetConsoleMode(t.stdin, &mode); err != nil {
		return nil, err
	}
	snap := &snapshot{stdin: t.stdin, inMode: mode, attrHost: &t.cur, attr: t.cur}

	raw := mode
	raw &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT
	raw |= windows.ENABLE_WINDOW_INPUT
	if err := windows.SetConsoleMode(t.stdin, raw); err != nil {
		return nil, err
	}
	return snap, nil
}

func (t *Terminal) Cook(snap api.ModeSnapshot) error {
	if snap == nil {
		return nil
	}
	return snap.Restore()
}
