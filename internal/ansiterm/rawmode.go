package ansiterm

import (
	"fmt"

	"golang.org/x/term"

	"github.com/climbch/vterm/api"
)

// rawSnapshot holds the termios state captured before switching to raw
// mode, so Cook can put the terminal back exactly as it found it.
type rawSnapshot struct {
	fd    int
	state *term.State
}

// Restore implements api.ModeSnapshot.
func (s *rawSnapshot) Restore() error {
	return term.Restore(s.fd, s.state)
}

// Raw switches the terminal to raw mode: no line buffering, no echo, no
// signal generation from Ctrl-C/Ctrl-Z. The returned snapshot must be passed
// to Cook to restore the terminal's prior mode.
func (t *Terminal) Raw() (api.ModeSnapshot, error) {
	if t.fd < 0 {
		return nil, fmt.Errorf("ansiterm: no terminal descriptor for raw mode")
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}
	return &rawSnapshot{fd: t.fd, state: state}, nil
}

// Cook restores the terminal mode captured by Raw.
func (t *Terminal) Cook(snap api.ModeSnapshot) error {
	if snap == nil {
		return fmt.Errorf("ansiterm: Cook called with nil snapshot")
	}
	return snap.Restore()
}
