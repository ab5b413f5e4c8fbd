package api

// ActionKind enumerates the commanded terminal operations a Backend executes.
type ActionKind int

// Action variants, per spec.md §3.
const (
	ActionGoto ActionKind = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionHideCursor
	ActionShowCursor
	ActionSaveCursor    // supplemented: see SPEC_FULL.md
	ActionRestoreCursor // supplemented: see SPEC_FULL.md
	ActionClear
	ActionSize
	ActionResize
	ActionEnableAlt
	ActionDisableAlt
	ActionPrints
	ActionPrintf
	ActionFlush
	ActionRaw
	ActionCook
	ActionEnableMouse
	ActionDisableMouse
	ActionSetFg
	ActionSetBg
	ActionSetFx
	ActionSetStyles
	ActionResetStyles
)

// Action is the single commanded-operation type sent over the signal channel.
// Only the fields relevant to Kind are populated; this mirrors the way the
// teacher's tea/domain/model.KeyMsg packs a Type tag plus payload fields into
// one struct instead of N sibling structs.
type Action struct {
	Kind ActionKind

	Col, Row int // Goto
	N        int // Up/Down/Left/Right
	Clear    Clear
	W, H     int // Resize
	Text     string // Prints/Printf
	Fg, Bg   Color
	Fx       Effect
}

// Goto moves the cursor to an absolute (col, row), both 0-based.
func Goto(col, row int) Action { return Action{Kind: ActionGoto, Col: col, Row: row} }

// Up moves the cursor up n rows.
func Up(n int) Action { return Action{Kind: ActionUp, N: n} }

// Down moves the cursor down n rows.
func Down(n int) Action { return Action{Kind: ActionDown, N: n} }

// Left moves the cursor left n columns.
func Left(n int) Action { return Action{Kind: ActionLeft, N: n} }

// Right moves the cursor right n columns.
func Right(n int) Action { return Action{Kind: ActionRight, N: n} }

// HideCursor hides the cursor.
func HideCursor() Action { return Action{Kind: ActionHideCursor} }

// ShowCursor shows the cursor.
func ShowCursor() Action { return Action{Kind: ActionShowCursor} }

// SaveCursor pushes the cursor position onto the backend's one-slot stack.
func SaveCursor() Action { return Action{Kind: ActionSaveCursor} }

// RestoreCursor pops the cursor position saved by SaveCursor.
func RestoreCursor() Action { return Action{Kind: ActionRestoreCursor} }

// ClearAction clears part or all of the screen.
func ClearAction(c Clear) Action { return Action{Kind: ActionClear, Clear: c} }

// Size requests the current terminal dimensions.
func Size() Action { return Action{Kind: ActionSize} }

// Resize requests a new terminal window size.
func Resize(w, h int) Action { return Action{Kind: ActionResize, W: w, H: h} }

// EnableAlt switches to the alternate screen buffer.
func EnableAlt() Action { return Action{Kind: ActionEnableAlt} }

// DisableAlt returns to the normal screen buffer.
func DisableAlt() Action { return Action{Kind: ActionDisableAlt} }

// Prints writes s without interpreting it as a format string.
func Prints(s string) Action { return Action{Kind: ActionPrints, Text: s} }

// Printf writes s (already formatted by the caller).
func Printf(s string) Action { return Action{Kind: ActionPrintf, Text: s} }

// Flush flushes any buffered output.
func Flush() Action { return Action{Kind: ActionFlush} }

// Raw puts the terminal into raw mode.
func Raw() Action { return Action{Kind: ActionRaw} }

// Cook restores cooked (canonical) terminal mode.
func Cook() Action { return Action{Kind: ActionCook} }

// EnableMouse turns on mouse event reporting.
func EnableMouse() Action { return Action{Kind: ActionEnableMouse} }

// DisableMouse turns off mouse event reporting.
func DisableMouse() Action { return Action{Kind: ActionDisableMouse} }

// SetFg sets the foreground color.
func SetFg(c Color) Action { return Action{Kind: ActionSetFg, Fg: c} }

// SetBg sets the background color.
func SetBg(c Color) Action { return Action{Kind: ActionSetBg, Bg: c} }

// SetFx sets the effect mask.
func SetFx(fx Effect) Action { return Action{Kind: ActionSetFx, Fx: fx} }

// SetStyles sets foreground, background, and effect mask together.
func SetStyles(fg, bg Color, fx Effect) Action {
	return Action{Kind: ActionSetStyles, Fg: fg, Bg: bg, Fx: fx}
}

// ResetStyles clears all active styling back to terminal defaults.
func ResetStyles() Action { return Action{Kind: ActionResetStyles} }

// CmdKind enumerates the messages carried on the dispatcher's signal channel.
type CmdKind int

// Cmd variants, per spec.md §3/§4.5.
const (
	CmdContinue CmdKind = iota
	CmdSuspend
	CmdTransmit
	CmdStop
	CmdLock
	CmdUnlock
	CmdSignal
)

// Cmd is a message sent from an EventHandle to the dispatcher's signal thread.
type Cmd struct {
	Kind   CmdKind
	ID     uint64 // Suspend/Transmit/Stop/Lock
	Action Action // Signal
}
