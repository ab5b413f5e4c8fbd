// Package vterm provides cross-platform terminal control: cursor movement,
// styling, screen clearing, raw mode, and a unified stream of keyboard and
// mouse input events.
//
// # Overview
//
// vterm picks one of two backends at Detect time: ANSI escape sequences on
// Unix and VT-capable Windows consoles, or the native Win32 Console API on
// legacy Windows consoles. Callers issue Actions (Goto, SetFg, Clear, ...)
// either directly against a Backend or through a Dispatcher's signal
// channel, and read InputEvents from an EventHandle.
//
// # Quick start
//
//	term, err := vterm.Detect()
//	if err != nil {
//		log.Fatal(err)
//	}
//	d := vterm.Init(term)
//	handle := d.Listen()
//	defer d.Close()
//
//	d.Signal(vterm.Goto(0, 0))
//	d.Signal(vterm.Prints("hello"))
//	d.Signal(vterm.Flush())
//
//	for {
//		if ev, ok := handle.PollSync(); ok {
//			if ev.Kind == vterm.EventKeyboard && ev.Keyboard.Type == vterm.KeyCtrl && ev.Keyboard.Rune == 'c' {
//				break
//			}
//		}
//	}
//
// # Screen back-buffer
//
// The optional Screen type layers a diffed back-buffer on top of a Backend,
// so repeated full-frame renders only emit the escape sequences needed to
// patch what actually changed.
package vterm
