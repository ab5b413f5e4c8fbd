//go:build windows

package vterm

import (
	"golang.org/x/sys/windows"

	"github.com/climbch/vterm/internal/winparser"
	"github.com/climbch/vterm/internal/wincon"
)

// runInputLoop reads INPUT_RECORD batches from the console input buffer,
// decodes each with internal/winparser, and pushes the resulting events
// onto the dispatcher's input channel for the signal thread to fan out.
func (d *Dispatcher) runInputLoop() {
	defer d.wg.Done()

	stdin, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return
	}

	buf := make([]wincon.InputRecord, 32)
	for {
		select {
		case <-d.done:
			return
		default:
		}

		n, err := wincon.ReadConsoleInput(stdin, buf)
		if err != nil {
			return
		}

		for _, rec := range buf[:n] {
			ev, ok := winparser.ParseRecord(&rec)
			if !ok {
				continue
			}
			select {
			case d.inputCh <- ev:
			case <-d.done:
				return
			}
		}
	}
}
