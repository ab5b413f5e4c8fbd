package vterm

import "github.com/climbch/vterm/api"

// EventHandle is a subscriber's view onto a Dispatcher: a private stream of
// InputEvents plus the ability to signal the dispatcher's command channel.
type EventHandle struct {
	eventCh  <-chan api.InputEvent
	id       uint64
	signalCh chan<- api.Cmd
}

// PollAsync returns the next buffered event without blocking, or ok=false
// if none is currently available.
func (h *EventHandle) PollAsync() (ev api.InputEvent, ok bool) {
	select {
	case ev, ok = <-h.eventCh:
		return ev, ok
	default:
		return api.InputEvent{}, false
	}
}

// PollLatestAsync drains every buffered event and returns only the most
// recent one, discarding the rest. Use this when a subscriber only cares
// about the current input state (e.g. polling for the latest key) and would
// otherwise fall behind a fast producer.
func (h *EventHandle) PollLatestAsync() (ev api.InputEvent, ok bool) {
	for {
		next, got := h.PollAsync()
		if !got {
			return ev, ok
		}
		ev, ok = next, true
	}
}

// PollSync blocks until an event arrives or the dispatcher closes this
// handle's channel (ok=false on close).
func (h *EventHandle) PollSync() (ev api.InputEvent, ok bool) {
	ev, ok = <-h.eventCh
	return ev, ok
}

// Suspend tells the dispatcher to stop delivering events to this handle
// until Transmit is called, without removing it from the roster.
func (h *EventHandle) Suspend() {
	h.signalCh <- api.Cmd{Kind: api.CmdSuspend, ID: h.id}
}

// Transmit resumes delivery after Suspend.
func (h *EventHandle) Transmit() {
	h.signalCh <- api.Cmd{Kind: api.CmdTransmit, ID: h.id}
}

// Stop unregisters this handle; its channel is closed and it receives no
// further events.
func (h *EventHandle) Stop() {
	h.signalCh <- api.Cmd{Kind: api.CmdStop, ID: h.id}
}

// Lock makes this handle the sole recipient of input events, starving every
// other registered handle, until Unlock is called. Only one handle may hold
// the lock at a time; a second Lock call is ignored until the first unlocks.
func (h *EventHandle) Lock() {
	h.signalCh <- api.Cmd{Kind: api.CmdLock, ID: h.id}
}

// Unlock releases the lock taken by Lock, restoring broadcast delivery to
// every non-suspended handle.
func (h *EventHandle) Unlock() {
	h.signalCh <- api.Cmd{Kind: api.CmdUnlock}
}

// Signal asks the dispatcher to execute action against the backend.
func (h *EventHandle) Signal(action api.Action) {
	h.signalCh <- api.Cmd{Kind: api.CmdSignal, Action: action}
}
