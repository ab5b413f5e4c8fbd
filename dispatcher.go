package vterm

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/climbch/vterm/api"
)

// tickDelay paces the signal thread's poll loop so it isn't a busy spin.
// Mirrors the original implementation's fixed inter-tick delay.
const tickDelay = 10 * time.Millisecond

// Dispatcher owns one Backend and fans out its input events to any number
// of registered EventHandles, while serializing every Action the handles
// signal through a single goroutine so backend writes never interleave.
//
// Three long-lived goroutines make up a Dispatcher: the one spawned by
// Init to drain the signal channel and execute Actions/roster commands, the
// one spawned by Listen to read raw input, and the caller's own goroutine
// issuing Signal/Poll calls against its EventHandles.
type Dispatcher struct {
	backend api.Backend

	mu        sync.Mutex
	emitters  map[uint64]*emitter
	lockOwner uint64
	nextID    uint64

	inputCh  chan api.InputEvent
	signalCh chan api.Cmd

	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup

	rawMode api.ModeSnapshot
}

// Init wires a Dispatcher to backend and starts its signal-processing
// goroutine. Call Listen to begin reading input and obtain the first
// EventHandle.
func Init(backend api.Backend) *Dispatcher {
	d := &Dispatcher{
		backend:  backend,
		emitters: make(map[uint64]*emitter, 8),
		inputCh:  make(chan api.InputEvent, 64),
		signalCh: make(chan api.Cmd, 16),
		done:     make(chan struct{}),
	}
	d.running.Store(true)

	d.wg.Add(1)
	go d.runSignalLoop()

	return d
}

func (d *Dispatcher) runSignalLoop() {
	defer d.wg.Done()
	ticker := time.NewTicker(tickDelay)
	defer ticker.Stop()

	for {
		select {
		case <-d.done:
			return
		case <-ticker.C:
			d.drainOneInput()
			d.drainOneSignal()
		}
	}
}

// drainOneInput forwards at most one buffered input event to the roster per
// tick, matching the original dispatcher's one-message-per-tick pacing.
func (d *Dispatcher) drainOneInput() {
	select {
	case ev := <-d.inputCh:
		d.broadcast(ev)
	default:
	}
}

func (d *Dispatcher) broadcast(ev api.InputEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for id, e := range d.emitters {
		if !e.isRunning {
			delete(d.emitters, id)
		}
	}

	if d.lockOwner != 0 {
		if e, ok := d.emitters[d.lockOwner]; ok {
			if !e.isSuspend {
				select {
				case e.eventCh <- ev:
				default:
				}
			}
			return
		}
		d.lockOwner = 0
	}

	for _, e := range d.emitters {
		if e.isSuspend {
			continue
		}
		select {
		case e.eventCh <- ev:
		default:
		}
	}
}

func (d *Dispatcher) drainOneSignal() {
	select {
	case cmd := <-d.signalCh:
		d.handleCmd(cmd)
	default:
	}
}

func (d *Dispatcher) handleCmd(cmd api.Cmd) {
	switch cmd.Kind {
	case api.CmdContinue:
	case api.CmdSuspend:
		d.withEmitter(cmd.ID, func(e *emitter) { e.isSuspend = true })
	case api.CmdTransmit:
		d.withEmitter(cmd.ID, func(e *emitter) { e.isSuspend = false })
	case api.CmdStop:
		d.mu.Lock()
		if e, ok := d.emitters[cmd.ID]; ok {
			e.isRunning = false
			close(e.eventCh)
			delete(d.emitters, cmd.ID)
		}
		d.mu.Unlock()
	case api.CmdLock:
		d.mu.Lock()
		if d.lockOwner == 0 {
			d.lockOwner = cmd.ID
		}
		d.mu.Unlock()
	case api.CmdUnlock:
		d.mu.Lock()
		d.lockOwner = 0
		d.mu.Unlock()
	case api.CmdSignal:
		_ = d.execute(cmd.Action)
	}
}

func (d *Dispatcher) withEmitter(id uint64, fn func(*emitter)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.emitters[id]; ok {
		fn(e)
	}
}

// execute runs a single Action against the backend. Errors are swallowed
// here the same way the original dispatcher's signal loop discards them:
// a malformed write to a closed terminal shouldn't take the whole loop down.
func (d *Dispatcher) execute(a api.Action) error {
	switch a.Kind {
	case api.ActionGoto:
		return d.backend.Goto(a.Col, a.Row)
	case api.ActionUp:
		return d.backend.Up(a.N)
	case api.ActionDown:
		return d.backend.Down(a.N)
	case api.ActionLeft:
		return d.backend.Left(a.N)
	case api.ActionRight:
		return d.backend.Right(a.N)
	case api.ActionHideCursor:
		return d.backend.HideCursor()
	case api.ActionShowCursor:
		return d.backend.ShowCursor()
	case api.ActionSaveCursor:
		return d.backend.SaveCursor()
	case api.ActionRestoreCursor:
		return d.backend.RestoreCursor()
	case api.ActionClear:
		return d.backend.Clear(a.Clear)
	case api.ActionResize:
		return d.backend.Resize(a.W, a.H)
	case api.ActionEnableAlt:
		return d.backend.EnableAlt()
	case api.ActionDisableAlt:
		return d.backend.DisableAlt()
	case api.ActionPrints:
		return d.backend.Prints(a.Text)
	case api.ActionPrintf:
		if err := d.backend.Prints(a.Text); err != nil {
			return err
		}
		return d.backend.Flush()
	case api.ActionFlush:
		return d.backend.Flush()
	case api.ActionRaw:
		snap, err := d.backend.Raw()
		if err != nil {
			return err
		}
		d.rawMode = snap
		return nil
	case api.ActionCook:
		return d.backend.Cook(d.rawMode)
	case api.ActionEnableMouse:
		return d.backend.EnableMouse()
	case api.ActionDisableMouse:
		return d.backend.DisableMouse()
	case api.ActionSetFg:
		return d.backend.SetFg(a.Fg)
	case api.ActionSetBg:
		return d.backend.SetBg(a.Bg)
	case api.ActionSetFx:
		return d.backend.SetFx(a.Fx)
	case api.ActionSetStyles:
		return d.backend.SetStyles(a.Fg, a.Bg, a.Fx)
	case api.ActionResetStyles:
		return d.backend.ResetStyles()
	default:
		return nil
	}
}

// Listen starts the input-reading goroutine and registers the first
// EventHandle. Call it once per Dispatcher.
func (d *Dispatcher) Listen() *EventHandle {
	d.wg.Add(1)
	go d.runInputLoop()
	return d.Spawn()
}

// Spawn registers an additional EventHandle sharing this Dispatcher's input
// stream and backend.
func (d *Dispatcher) Spawn() *EventHandle {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	e := &emitter{eventCh: make(chan api.InputEvent, 64), isRunning: true}
	d.emitters[id] = e

	return &EventHandle{eventCh: e.eventCh, id: id, signalCh: d.signalCh}
}

// Signal asks the dispatcher to execute action against the backend. Safe to
// call concurrently with any EventHandle's methods.
func (d *Dispatcher) Signal(action api.Action) {
	d.signalCh <- api.Cmd{Kind: api.CmdSignal, Action: action}
}

// Size reports the backend's current terminal dimensions. Unlike the other
// Actions, Size is a query with a return value, so it bypasses the signal
// channel and reads the backend directly; callers that need it serialized
// with in-flight writes should precede it with a Signal(Flush()).
func (d *Dispatcher) Size() (w, h int, err error) {
	return d.backend.Size()
}

// Close stops both background goroutines, releases every registered
// EventHandle's channel, and attempts to restore the terminal to the state
// it was in before this Dispatcher touched it. Close blocks until both
// goroutines have exited.
func (d *Dispatcher) Close() {
	if !d.running.CompareAndSwap(true, false) {
		return
	}
	close(d.done)
	d.wg.Wait()

	d.mu.Lock()
	for id, e := range d.emitters {
		close(e.eventCh)
		delete(d.emitters, id)
	}
	d.mu.Unlock()

	d.teardown()
}

// teardown runs the best-effort terminal restoration spec.md §7 requires on
// drop: restore the mode a prior Raw captured, show the cursor, disable
// alt-screen, disable mouse reporting, reset styles. Every step runs
// regardless of earlier failures, and the whole sequence is safe to invoke
// even when the corresponding Action was never signaled during the session.
func (d *Dispatcher) teardown() {
	if d.rawMode != nil {
		_ = d.backend.Cook(d.rawMode)
	}
	_ = d.backend.ShowCursor()
	_ = d.backend.DisableAlt()
	_ = d.backend.DisableMouse()
	_ = d.backend.ResetStyles()
	_ = d.backend.Flush()
}
