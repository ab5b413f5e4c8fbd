//go:build !windows

package vterm

import (
	"bufio"
	"os"

	"github.com/climbch/vterm/internal/unixparser"
)

// openInputDevice returns the file input is read from: /dev/tty when it can
// be opened (the controlling terminal, reachable even if stdin has been
// redirected from a pipe or file per spec.md §6), falling back to stdin
// otherwise so reading still works against a piped-in test harness.
func openInputDevice() *os.File {
	if tty, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0); err == nil {
		return tty
	}
	return os.Stdin
}

// runInputLoop reads input bytes one at a time, decodes each event with
// internal/unixparser, and pushes it onto the dispatcher's input channel
// for the signal thread to fan out. It exits when the input file returns an
// error (typically EOF on shutdown) or the dispatcher is closed.
func (d *Dispatcher) runInputLoop() {
	defer d.wg.Done()

	f := openInputDevice()
	defer func() {
		if f != os.Stdin {
			f.Close()
		}
	}()

	r := bufio.NewReader(f)
	for {
		select {
		case <-d.done:
			return
		default:
		}

		b, err := r.ReadByte()
		if err != nil {
			return
		}

		ev, err := unixparser.ParseEvent(b, r)
		if err != nil {
			continue
		}

		select {
		case d.inputCh <- ev:
		case <-d.done:
			return
		}
	}
}
