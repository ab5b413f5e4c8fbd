//go:build !windows

package vterm

import (
	"fmt"

	"github.com/climbch/vterm/api"
	"github.com/climbch/vterm/internal/ansiterm"
)

// Detect returns the ANSI backend on every Unix target; there is no
// alternative backend to choose between off Windows. Per spec.md §4.3 this
// probes TERM before committing to it: a terminal with no VT capability
// (TERM unset or "dumb") has nothing this library can drive, which spec.md
// §1 lists as out of scope rather than something to degrade gracefully for.
func Detect() (api.Backend, error) {
	if !hasVTCapableTerm() {
		return nil, fmt.Errorf("vterm: TERM is unset or %q; no VT-capable terminal detected", "dumb")
	}
	return ansiterm.New(), nil
}
