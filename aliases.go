package vterm

import "github.com/climbch/vterm/api"

// Color, Effect, and Style are aliases for the api package's value types, so
// callers of this package never need to import api directly.
type (
	Color = api.Color
	Effect = api.Effect
	Style  = api.Style
	Clear  = api.Clear
	Action = api.Action
	Cmd    = api.Cmd

	InputEvent = api.InputEvent
	KeyEvent   = api.KeyEvent
	MouseEvent = api.MouseEvent

	Backend      = api.Backend
	ModeSnapshot = api.ModeSnapshot
	Platform     = api.Platform
)

// Color constants.
var (
	Reset       = api.Reset
	Black       = api.Black
	DarkGrey    = api.DarkGrey
	Red         = api.Red
	DarkRed     = api.DarkRed
	Green       = api.Green
	DarkGreen   = api.DarkGreen
	Yellow      = api.Yellow
	DarkYellow  = api.DarkYellow
	Blue        = api.Blue
	DarkBlue    = api.DarkBlue
	Magenta     = api.Magenta
	DarkMagenta = api.DarkMagenta
	Cyan        = api.Cyan
	DarkCyan    = api.DarkCyan
	White       = api.White
	Grey        = api.Grey

	RGB       = api.RGB
	AnsiValue = api.AnsiValue
)

// Effect flags.
const (
	EffectReset     = api.EffectReset
	EffectBold      = api.EffectBold
	EffectDim       = api.EffectDim
	EffectUnderline = api.EffectUnderline
	EffectReverse   = api.EffectReverse
	EffectHide      = api.EffectHide
)

// Clear modes.
const (
	ClearAll         = api.ClearAll
	ClearCursorDown  = api.ClearCursorDown
	ClearCursorUp    = api.ClearCursorUp
	ClearCurrentLine = api.ClearCurrentLine
	ClearNewLine     = api.ClearNewLine
)

// Platform identifiers.
const (
	PlatformUnix           = api.PlatformUnix
	PlatformWindowsConsole = api.PlatformWindowsConsole
	PlatformWindowsANSI    = api.PlatformWindowsANSI
	PlatformUnknown        = api.PlatformUnknown
)

// Action constructors.
var (
	Goto          = api.Goto
	Up            = api.Up
	Down          = api.Down
	Left          = api.Left
	Right         = api.Right
	HideCursor    = api.HideCursor
	ShowCursor    = api.ShowCursor
	SaveCursor    = api.SaveCursor
	RestoreCursor = api.RestoreCursor
	ClearAction   = api.ClearAction
	Size          = api.Size
	Resize        = api.Resize
	EnableAlt     = api.EnableAlt
	DisableAlt    = api.DisableAlt
	Prints        = api.Prints
	Printf        = api.Printf
	Flush         = api.Flush
	Raw           = api.Raw
	Cook          = api.Cook
	EnableMouse   = api.EnableMouse
	DisableMouse  = api.DisableMouse
	SetFg         = api.SetFg
	SetBg         = api.SetBg
	SetFx         = api.SetFx
	SetStyles     = api.SetStyles
	ResetStyles   = api.ResetStyles
	Fg            = api.Fg
	Bg            = api.Bg
	Fx            = api.Fx
)

// Input-event constructors.
var (
	CharKey = api.Char
	AltKey  = api.Alt
	CtrlKey = api.Ctrl
	FKey    = api.F
	PosKey  = api.Pos

	PressMouse   = api.Press
	ReleaseMouse = api.Release
	HoldMouse    = api.Hold

	Keyboard   = api.Keyboard
	MouseInput = api.MouseInput
)

// Input-event kinds, key types, and mouse buttons.
const (
	EventKeyboard = api.EventKeyboard
	EventMouse    = api.EventMouse
	EventUnknown  = api.EventUnknown

	KeyBackspace = api.KeyBackspace
	KeyEnter     = api.KeyEnter
	KeyLeft      = api.KeyLeft
	KeyRight     = api.KeyRight
	KeyUp        = api.KeyUp
	KeyDown      = api.KeyDown
	KeyHome      = api.KeyHome
	KeyEnd       = api.KeyEnd
	KeyPageUp    = api.KeyPageUp
	KeyPageDown  = api.KeyPageDown
	KeyTab       = api.KeyTab
	KeyBackTab   = api.KeyBackTab
	KeyDelete    = api.KeyDelete
	KeyInsert    = api.KeyInsert
	KeyF         = api.KeyF
	KeyChar      = api.KeyChar
	KeyAlt       = api.KeyAlt
	KeyCtrl      = api.KeyCtrl
	KeyNull      = api.KeyNull
	KeyEsc       = api.KeyEsc
	KeyCtrlUp    = api.KeyCtrlUp
	KeyCtrlDown  = api.KeyCtrlDown
	KeyCtrlLeft  = api.KeyCtrlLeft
	KeyCtrlRight = api.KeyCtrlRight
	KeyShiftUp    = api.KeyShiftUp
	KeyShiftDown  = api.KeyShiftDown
	KeyShiftLeft  = api.KeyShiftLeft
	KeyShiftRight = api.KeyShiftRight
	KeyPos        = api.KeyPos

	MouseLeft      = api.MouseLeft
	MouseRight     = api.MouseRight
	MouseMiddle    = api.MouseMiddle
	MouseWheelUp   = api.MouseWheelUp
	MouseWheelDown = api.MouseWheelDown
)
