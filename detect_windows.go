//go:build windows

package vterm

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/climbch/vterm/api"
	"github.com/climbch/vterm/internal/ansiterm"
	"github.com/climbch/vterm/internal/wincon"
)

// Detect probes the Windows console for VT processing support
// (ENABLE_VIRTUAL_TERMINAL_PROCESSING) and picks the ANSI backend when it is
// available (also checking TERM, for the mintty/Cygwin/WSL case where a VT
// terminal front-ends the console, per spec.md §4.3), falling back to the
// legacy Win32 Console API backend otherwise. The choice is fixed for the
// lifetime of the returned Backend; callers that need to react to a later
// VT-capability change must call Detect again and rebuild their Dispatcher.
func Detect() (api.Backend, error) {
	stdout := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(stdout, &mode); err == nil {
		enabled := mode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
		if windows.SetConsoleMode(stdout, enabled) == nil {
			return ansiterm.NewWithOutput(os.Stdout, api.PlatformWindowsANSI, int(stdout)), nil
		}
	}

	if hasVTCapableTerm() {
		return ansiterm.NewWithOutput(os.Stdout, api.PlatformWindowsANSI, int(stdout)), nil
	}

	term, err := wincon.New()
	if err != nil {
		return nil, err
	}
	return term, nil
}
